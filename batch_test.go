package ethaddr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateManyUnique(t *testing.T) {
	const n = 200
	keypairs, err := GenerateMany(context.Background(), n, Config{Workers: 4})
	require.NoError(t, err)
	require.Len(t, keypairs, n)

	seen := make(map[PrivateKey]bool, n)
	for i, keypair := range keypairs {
		require.NotNil(t, keypair, "missing keypair at slot %d", i)
		assert.False(t, seen[keypair.PrivateKey], "duplicate private key at slot %d", i)
		seen[keypair.PrivateKey] = true
	}
}

func TestGenerateManyLimitExceeded(t *testing.T) {
	_, err := GenerateMany(context.Background(), 11, Config{MaxBatch: 10})
	assert.ErrorIs(t, err, ErrBatchLimitExceeded)
}

func TestGenerateManyInvalidCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		_, err := GenerateMany(context.Background(), count, Config{})
		assert.ErrorIs(t, err, ErrInvalidConfig, "count %d", count)
	}
}

func TestGenerateManyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateMany(ctx, 100, Config{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateManyEntropyFailure(t *testing.T) {
	g := &Generator{Rand: failingReader{}}

	_, err := g.GenerateMany(context.Background(), 8, Config{Workers: 2})
	assert.ErrorIs(t, err, ErrEntropyUnavailable)
}

func TestGenerateManySingleWorker(t *testing.T) {
	keypairs, err := GenerateMany(context.Background(), 5, Config{Workers: 1})
	require.NoError(t, err)
	assert.Len(t, keypairs, 5)
}

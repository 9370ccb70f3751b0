package ethaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv("ETHADDR_TEST")
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxBatch, cfg.MaxBatch)
	assert.Equal(t, 0, cfg.Workers)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ETHADDR_TEST_MAX_BATCH", "50")
	t.Setenv("ETHADDR_TEST_WORKERS", "2")

	cfg, err := FromEnv("ETHADDR_TEST")
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.MaxBatch)
	assert.Equal(t, 2, cfg.Workers)
}

func TestFromEnvInvalid(t *testing.T) {
	t.Setenv("ETHADDR_TEST_MAX_BATCH", "not-a-number")

	_, err := FromEnv("ETHADDR_TEST")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()

	assert.Equal(t, DefaultMaxBatch, cfg.MaxBatch)
	assert.Greater(t, cfg.Workers, 0)

	cfg = Config{MaxBatch: 10, Workers: 3}.WithDefaults()
	assert.Equal(t, 10, cfg.MaxBatch)
	assert.Equal(t, 3, cfg.Workers)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{MaxBatch: 1, Workers: 1}
	assert.NoError(t, valid.Validate())

	negBatch := Config{MaxBatch: -1}
	assert.ErrorIs(t, negBatch.Validate(), ErrInvalidConfig)

	negWorkers := Config{Workers: -1}
	assert.ErrorIs(t, negWorkers.Validate(), ErrInvalidConfig)
}

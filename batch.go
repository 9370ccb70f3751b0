package ethaddr

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// GenerateMany produces count independent keypairs. Generations run on a
// bounded worker pool; outputs are independent, so slot order carries no
// meaning beyond matching the request order. The count is capped by
// cfg.MaxBatch and the call fails before generating anything when the cap
// is exceeded.
func (g *Generator) GenerateMany(ctx context.Context, count int, cfg Config) ([]*Keypair, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d",
			ErrInvalidConfig, count)
	}
	if count > cfg.MaxBatch {
		return nil, fmt.Errorf("%w: count %d > limit %d",
			ErrBatchLimitExceeded, count, cfg.MaxBatch)
	}

	out := make([]*Keypair, count)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i := range out {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			keypair, err := g.Generate()
			if err != nil {
				return err
			}
			out[i] = keypair
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateMany produces count independent keypairs using the default
// generator.
func GenerateMany(ctx context.Context, count int, cfg Config) ([]*Keypair, error) {
	return defaultGenerator.GenerateMany(ctx, count, cfg)
}

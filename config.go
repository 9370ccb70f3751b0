package ethaddr

import (
	"fmt"
	"runtime"

	"github.com/kelseyhightower/envconfig"
)

const (
	// DefaultMaxBatch is the ceiling on a single GenerateMany call. It is
	// an operational safety limit against accidental resource exhaustion,
	// not a correctness constraint.
	DefaultMaxBatch = 1_000_000
)

// Config holds batch generation settings. The zero value is usable;
// WithDefaults fills in anything left unset.
type Config struct {
	// MaxBatch is the largest count GenerateMany accepts.
	MaxBatch int `split_words:"true" default:"1000000"`
	// Workers is the number of concurrent generation workers.
	// Zero means one worker per available CPU.
	Workers int `default:"0"`
}

// FromEnv loads Config from environment variables with the given prefix,
// e.g. prefix "ETHADDR" reads ETHADDR_MAX_BATCH and ETHADDR_WORKERS.
func FromEnv(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c, nil
}

// WithDefaults returns Config with default values applied.
func (c Config) WithDefaults() Config {
	if c.MaxBatch == 0 {
		c.MaxBatch = DefaultMaxBatch
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}

// Validate checks configuration fields.
func (c *Config) Validate() error {
	if c.MaxBatch < 0 {
		return fmt.Errorf("%w: MaxBatch must not be negative, got %d",
			ErrInvalidConfig, c.MaxBatch)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: Workers must not be negative, got %d",
			ErrInvalidConfig, c.Workers)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment following the env and
// envPrefix tags of [StructuredConfig]. Every malformed variable is
// reported, not only the first one.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggErr env.AggregateError
	if errors.As(err, &aggErr) {
		return fmt.Errorf("%w: %w", ErrInvalidEnv, errors.Join(aggErr.Errors...))
	}
	return fmt.Errorf("%w: %w", ErrInvalidEnv, err)
}

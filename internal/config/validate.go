package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidChunkSize indicates invalid chunk size configuration.
	ErrInvalidChunkSize = errors.New("invalid chunk size")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateChunking(&cfg.Chunking); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateChunking(cfg *ChunkingConfig) error {
	var errs []error

	if cfg.MinChunkSize == 0 {
		errs = append(errs, fmt.Errorf("%w: min_chunk_size must be positive, got %d", ErrInvalidChunkSize, cfg.MinChunkSize))
	}
	if cfg.AvgChunkSize <= cfg.MinChunkSize {
		errs = append(errs, fmt.Errorf("%w: avg_chunk_size (%d) must be greater than min_chunk_size (%d)", ErrInvalidChunkSize, cfg.AvgChunkSize, cfg.MinChunkSize))
	}
	if cfg.MaxChunkSize <= cfg.AvgChunkSize {
		errs = append(errs, fmt.Errorf("%w: max_chunk_size (%d) must be greater than avg_chunk_size (%d)", ErrInvalidChunkSize, cfg.MaxChunkSize, cfg.AvgChunkSize))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

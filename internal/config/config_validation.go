// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Output.Report {
	case ReportStdout, ReportStderr:
	default:
		return fmt.Errorf("%w: unknown report target %q", ErrInvalidOutputConfigs, cfg.Output.Report)
	}

	if cfg.Output.BuildFlags && cfg.Output.Report == ReportStdout {
		return fmt.Errorf("%w: build flags and the trace cannot share stdout", ErrInvalidOutputConfigs)
	}

	if cfg.Output.BuildFlags && len(cfg.Command) > 0 {
		return fmt.Errorf("%w: build flags cannot be combined with a command", ErrInvalidOutputConfigs)
	}

	if cfg.Output.HeaderPath != "" && cfg.Output.ManifestPath != "" &&
		filepath.Clean(cfg.Output.HeaderPath) == filepath.Clean(cfg.Output.ManifestPath) {
		return fmt.Errorf("%w: header and manifest point to the same file", ErrInvalidOutputConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

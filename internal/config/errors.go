package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is inconsistent.
var (
	// ErrInvalidOutputConfigs indicates invalid output settings (for
	// example, an unknown report target, or build flags and the trace both
	// written to stdout).
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)

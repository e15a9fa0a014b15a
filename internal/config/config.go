// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable read by the tool
// itself. The firmware settings (WIFI_*, MQTT_*) are not tool configuration
// and are never read through this package.
const EnvPrefix = "ENVINJECT_"

// Report targets accepted by [Output.Report].
const (
	ReportStdout = "stdout"
	ReportStderr = "stderr"
)

// DefaultDotEnvFile is loaded when no .env file is configured.
const DefaultDotEnvFile = ".env"

// DefaultLogLevel is used when no log level is configured.
const DefaultLogLevel = "info"

// StructuredConfig is the top-level configuration container for the
// envinject tool. It is populated by merging values from command-line
// flags, environment variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// All environment names additionally carry [EnvPrefix].
type StructuredConfig struct {
	// Sources configures where firmware settings come from besides the
	// process environment.
	Sources Sources `envPrefix:"SOURCES_"`

	// Output configures the build sinks and the diagnostic trace.
	Output Output `envPrefix:"OUTPUT_"`

	// Policy configures how problems are treated and shown.
	Policy Policy `envPrefix:"POLICY_"`

	// Log configures the tool's own structured logs.
	Log Log `envPrefix:"LOG_"`

	// Command is run with the resolved environment after injection.
	// Populated from the arguments after "--" only.
	Command []string

	// ShowVersion prints build information and exits. Flag only.
	ShowVersion bool

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the ENVINJECT_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Sources holds the .env files layered under the process environment.
type Sources struct {
	// DotEnvFiles are read in order; the first file defining a variable
	// wins, and the process environment wins over all of them.
	// Env: ENVINJECT_SOURCES_DOTENV (comma separated)
	DotEnvFiles []string `env:"DOTENV" envSeparator:","`
}

// Output holds the build sink and trace settings.
type Output struct {
	// HeaderPath is the C header to generate. Empty disables the header.
	// Env: ENVINJECT_OUTPUT_HEADER
	HeaderPath string `env:"HEADER"`

	// ManifestPath is the JSON manifest to generate. Empty disables it.
	// Env: ENVINJECT_OUTPUT_MANIFEST
	ManifestPath string `env:"MANIFEST"`

	// BuildFlags prints -D compiler flags to stdout, for PlatformIO's
	// dynamic build_flags.
	// Env: ENVINJECT_OUTPUT_FLAGS
	BuildFlags bool `env:"FLAGS"`

	// Report is where the diagnostic trace goes: "stdout" or "stderr".
	// Env: ENVINJECT_OUTPUT_REPORT
	Report string `env:"REPORT"`

	// SkipEnvironmentDump disables the listing of the full environment at
	// the end of the trace.
	// Env: ENVINJECT_OUTPUT_SKIP_ENV_DUMP
	SkipEnvironmentDump bool `env:"SKIP_ENV_DUMP"`
}

// Policy holds validation and privacy settings.
type Policy struct {
	// Strict fails the run when the settings fail validation. Empty values
	// never fail a run.
	// Env: ENVINJECT_POLICY_STRICT
	Strict bool `env:"STRICT"`

	// MaskSecrets hides credentials in the trace.
	// Env: ENVINJECT_POLICY_MASK_SECRETS
	MaskSecrets bool `env:"MASK_SECRETS"`
}

// Log holds the tool's logging settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: ENVINJECT_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the tool configuration
// from all available sources in the following priority order (first
// source wins for non-zero fields):
//  1. Command-line flags (args, without the program name)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withFlags().
		withEnv().
		withJSON().
		build()
}

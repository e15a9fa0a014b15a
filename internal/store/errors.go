package store

import "errors"

// Sentinel errors returned by the environment store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSettingVariable is returned when a variable cannot be written to
	// the environment (e.g. the name contains "=").
	ErrSettingVariable = errors.New("error setting environment variable")

	// ErrDotEnvParse is returned when a .env file exists but cannot be read
	// or parsed.
	ErrDotEnvParse = errors.New("error reading dotenv file")
)

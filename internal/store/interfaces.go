package store

//go:generate mockgen -source=interfaces.go -destination=../mock/env_store_mock.go -package=mock

// EnvStore is the process environment as seen by the injector. It is the
// only mutable state of a run: settings are read from it and their resolved
// values are written back into it.
type EnvStore interface {
	// Lookup returns the value of key and whether it is present.
	Lookup(key string) (string, bool)
	// Set assigns value to key, creating it if needed.
	Set(key, value string) error
	// Environ returns a snapshot of all variables.
	Environ() map[string]string
}

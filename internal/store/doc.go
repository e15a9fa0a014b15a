// Package store provides access to the environment the injector reads its
// settings from and writes the resolved values back to.
//
// [OSEnvStore] wraps the real process environment; [MapEnvStore] keeps the
// variables in memory. [LoadDotEnv] layers .env files underneath whatever
// is already set.
package store

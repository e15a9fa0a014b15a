// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
)

// OSEnvStore is an [EnvStore] backed by the real process environment.
type OSEnvStore struct{}

// NewOSEnvStore returns an [EnvStore] over the process environment.
func NewOSEnvStore() *OSEnvStore {
	return &OSEnvStore{}
}

func (s *OSEnvStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (s *OSEnvStore) Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("%w %s: %w", ErrSettingVariable, key, err)
	}

	return nil
}

func (s *OSEnvStore) Environ() map[string]string {
	return EnvironToMap(os.Environ())
}

// MapEnvStore is an in-memory [EnvStore] for tests and embedding callers
// that must leave the real process environment untouched.
type MapEnvStore struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapEnvStore returns a store seeded with a copy of initial.
func NewMapEnvStore(initial map[string]string) *MapEnvStore {
	vars := make(map[string]string, len(initial))
	maps.Copy(vars, initial)

	return &MapEnvStore{vars: vars}
}

func (s *MapEnvStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.vars[key]
	return value, ok
}

func (s *MapEnvStore) Set(key, value string) error {
	if key == "" || strings.ContainsRune(key, '=') {
		return fmt.Errorf("%w %q: invalid name", ErrSettingVariable, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.vars[key] = value
	return nil
}

func (s *MapEnvStore) Environ() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.vars)
}

// EnvironToMap converts "KEY=VALUE" pairs, as returned by os.Environ, to a
// map. Entries without "=" are kept with an empty value.
func EnvironToMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		if key == "" {
			continue
		}
		env[key] = value
	}

	return env
}

// MapToEnviron is the inverse of [EnvironToMap]. The result is sorted by
// key so child processes see a deterministic environment.
func MapToEnviron(env map[string]string) []string {
	keys := slices.Sorted(maps.Keys(env))

	environ := make([]string, 0, len(keys))
	for _, key := range keys {
		environ = append(environ, key+"="+env[key])
	}

	return environ
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/fw-env-injector/internal/logger"
)

// DotEnvResult reports what [LoadDotEnv] did.
type DotEnvResult struct {
	// Loaded lists the files that were read.
	Loaded []string
	// Missing lists the files that did not exist and were skipped.
	Missing []string
	// Applied lists the variables that were added to the store.
	Applied []string
}

// LoadDotEnv reads the given .env files and adds their variables to s.
//
// Variables already present in s are never overridden, so the real
// environment always wins over a .env file, and among several files the
// first one that defines a variable wins. Missing files are skipped.
//
// ${VAR} references in unquoted and double-quoted values are expanded by
// godotenv from earlier keys of the same file and then from the process
// environment, not from s.
func LoadDotEnv(s EnvStore, log *logger.Logger, files ...string) (DotEnvResult, error) {
	var result DotEnvResult

	for _, file := range files {
		vars, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug().Str("file", file).Msg("dotenv file not found, skipping")
				result.Missing = append(result.Missing, file)
				continue
			}
			return result, fmt.Errorf("%w %s: %w", ErrDotEnvParse, file, err)
		}

		result.Loaded = append(result.Loaded, file)

		for _, key := range slices.Sorted(maps.Keys(vars)) {
			if _, exists := s.Lookup(key); exists {
				continue
			}
			if err := s.Set(key, vars[key]); err != nil {
				return result, err
			}
			result.Applied = append(result.Applied, key)
		}

		log.Debug().
			Str("file", file).
			Int("variables", len(vars)).
			Msg("dotenv file loaded")
	}

	return result, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/fw-env-injector/internal/build"
	"github.com/MKhiriev/fw-env-injector/internal/logger"
	"github.com/MKhiriev/fw-env-injector/internal/report"
	"github.com/MKhiriev/fw-env-injector/internal/settings"
	"github.com/MKhiriev/fw-env-injector/internal/store"
	"github.com/MKhiriev/fw-env-injector/models"
)

// InjectorOptions tune a single injector pass.
type InjectorOptions struct {
	// Strict turns validation problems into an error.
	Strict bool
	// SkipEnvironmentDump disables the listing of the final environment.
	SkipEnvironmentDump bool
}

type injectorService struct {
	schema   settings.Schema
	env      store.EnvStore
	build    build.Environment
	reporter *report.Reporter
	opts     InjectorOptions

	logger *logger.Logger
}

// NewInjectorService wires an [InjectorService] over the given schema,
// environment store, build sink and reporter.
func NewInjectorService(
	schema settings.Schema,
	env store.EnvStore,
	buildEnv build.Environment,
	reporter *report.Reporter,
	opts InjectorOptions,
	logger *logger.Logger,
) (InjectorService, error) {
	if env == nil || buildEnv == nil || reporter == nil || logger == nil {
		return nil, ErrNilDependency
	}
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings schema: %w", err)
	}

	return &injectorService{
		schema:   schema,
		env:      env,
		build:    buildEnv,
		reporter: reporter,
		opts:     opts,
		logger:   logger,
	}, nil
}

func (s *injectorService) Inject(ctx context.Context) (models.InjectionResult, error) {
	var result models.InjectionResult

	if err := ctx.Err(); err != nil {
		return result, err
	}

	log := logger.FromContextOr(ctx, s.logger)

	resolved := settings.Resolve(s.schema, s.env.Environ())
	result.Settings = resolved

	for _, setting := range resolved {
		if err := s.build.Define(setting.Name, setting.Value); err != nil {
			return result, fmt.Errorf("%w %s: %w", ErrRegisteringSetting, setting.Name, err)
		}

		if err := s.reporter.Processing(setting.Name, setting.Value, setting.Sensitive); err != nil {
			return result, fmt.Errorf("%w: %w", ErrReporting, err)
		}
		if setting.IsEmpty() {
			result.Warnings = append(result.Warnings, setting.Name)
			if err := s.reporter.NotSet(setting.Name); err != nil {
				return result, fmt.Errorf("%w: %w", ErrReporting, err)
			}
		}

		if err := s.env.Set(setting.Name, setting.Value); err != nil {
			return result, fmt.Errorf("%w %s: %w", ErrWritingBack, setting.Name, err)
		}

		log.Debug().
			Str("name", setting.Name).
			Bool("from_default", setting.FromDefault).
			Msg("setting injected")
	}

	problems := s.validate(resolved)
	for _, problem := range problems {
		result.Problems = append(result.Problems, problem.Error())
		if err := s.reporter.Problem(problem); err != nil {
			return result, fmt.Errorf("%w: %w", ErrReporting, err)
		}
	}
	if s.opts.Strict && len(problems) > 0 {
		return result, fmt.Errorf("%w: %d problem(s)", ErrInvalidSettings, len(problems))
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if err := s.build.Flush(); err != nil {
		return result, fmt.Errorf("%w: %w", ErrFlushingBuild, err)
	}

	if !s.opts.SkipEnvironmentDump {
		exported, err := s.dumpEnvironment()
		result.Exported = exported
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

func (s *injectorService) validate(resolved settings.Resolved) []error {
	fw, err := settings.Decode(resolved)
	if err != nil {
		return []error{err}
	}

	return fw.Validate()
}

// dumpEnvironment lists every variable of the final environment, sorted by
// name. Variables that carry a sensitive setting are masked like the
// setting itself.
func (s *injectorService) dumpEnvironment() (int, error) {
	environ := s.env.Environ()

	for _, key := range slices.Sorted(maps.Keys(environ)) {
		setting, known := s.schema.Lookup(key)
		if err := s.reporter.Exported(key, environ[key], known && setting.Sensitive); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrReporting, err)
		}
	}

	return len(environ), nil
}

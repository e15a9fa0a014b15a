// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/fw-env-injector/internal/build"
	"github.com/MKhiriev/fw-env-injector/internal/config"
	"github.com/MKhiriev/fw-env-injector/internal/logger"
	"github.com/MKhiriev/fw-env-injector/internal/report"
	"github.com/MKhiriev/fw-env-injector/internal/service"
	"github.com/MKhiriev/fw-env-injector/internal/settings"
	"github.com/MKhiriev/fw-env-injector/internal/store"
	"github.com/MKhiriev/fw-env-injector/models"
)

// Streams are the standard streams of the process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// App is one envinject invocation.
type App struct {
	cfg      *config.StructuredConfig
	env      store.EnvStore
	injector service.InjectorService
	streams  Streams

	logger *logger.Logger
}

// NewApp wires an [App] from cfg. env is the environment the settings are
// read from and written back to; pass [store.NewOSEnvStore] for real runs.
func NewApp(cfg *config.StructuredConfig, env store.EnvStore, streams Streams, log *logger.Logger) (*App, error) {
	buildEnv := newBuildEnvironment(cfg.Output, streams.Stdout, log)

	reportOut := streams.Stdout
	if cfg.Output.Report == config.ReportStderr {
		reportOut = streams.Stderr
	}
	reporter := report.NewReporter(reportOut, report.WithMasking(cfg.Policy.MaskSecrets))

	injector, err := service.NewInjectorService(
		settings.DefaultSchema(),
		env,
		buildEnv,
		reporter,
		service.InjectorOptions{
			Strict:              cfg.Policy.Strict,
			SkipEnvironmentDump: cfg.Output.SkipEnvironmentDump,
		},
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating injector service: %w", err)
	}

	return &App{
		cfg:      cfg,
		env:      env,
		injector: service.NewInjectorLoggingService(log).Wrap(injector),
		streams:  streams,
		logger:   log,
	}, nil
}

// Run loads the .env files, injects the settings and, when configured,
// runs the build command. A failing command is reported as *[ExitError].
func (a *App) Run(ctx context.Context) (models.InjectionResult, error) {
	dotenv, err := store.LoadDotEnv(a.env, a.logger, a.cfg.Sources.DotEnvFiles...)
	if err != nil {
		return models.InjectionResult{}, fmt.Errorf("error loading dotenv files: %w", err)
	}
	a.logger.Debug().
		Strs("loaded", dotenv.Loaded).
		Strs("missing", dotenv.Missing).
		Int("applied", len(dotenv.Applied)).
		Msg(MsgDotEnvLoaded)

	result, err := a.injector.Inject(ctx)
	if err != nil {
		return result, err
	}

	if len(a.cfg.Command) == 0 {
		return result, nil
	}

	return result, a.runCommand(ctx, a.cfg.Command)
}

// newBuildEnvironment combines the sinks requested by cfg. Without any
// sink the settings are still registered, in memory only.
func newBuildEnvironment(cfg config.Output, stdout io.Writer, log *logger.Logger) build.Environment {
	var envs []build.Environment

	if cfg.HeaderPath != "" {
		envs = append(envs, build.NewHeaderEnvironment(cfg.HeaderPath))
	}
	if cfg.ManifestPath != "" {
		envs = append(envs, build.NewManifestEnvironment(cfg.ManifestPath))
	}
	if cfg.BuildFlags {
		envs = append(envs, build.NewFlagsEnvironment(stdout))
	}

	switch len(envs) {
	case 0:
		log.Info().Msg(MsgNoBuildOutput)
		return build.NewRecorderEnvironment()
	case 1:
		return envs[0]
	default:
		return build.Multi(envs...)
	}
}

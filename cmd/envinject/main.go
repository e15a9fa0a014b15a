// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fw-env-injector/internal/app"
	"github.com/MKhiriev/fw-env-injector/internal/config"
	"github.com/MKhiriev/fw-env-injector/internal/logger"
	"github.com/MKhiriev/fw-env-injector/internal/store"
	"github.com/MKhiriev/fw-env-injector/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewConsoleLogger("envinject", os.Stderr)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Error().Err(err).Msg(app.MsgConfigError)
		return 2
	}

	if cfg.ShowVersion {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return 0
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Error().Err(err).Msg(app.MsgConfigError)
		return 2
	}

	streams := app.Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	envinject, err := app.NewApp(cfg, store.NewOSEnvStore(), streams, log)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgInitError)
		return 1
	}

	if _, err = envinject.Run(ctx); err != nil {
		var exitErr *app.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		log.Error().Err(err).Msg(app.MsgInjectionError)
		return 1
	}

	return 0
}

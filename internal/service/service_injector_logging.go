package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/fw-env-injector/internal/logger"
	"github.com/MKhiriev/fw-env-injector/models"
)

type InjectorLoggingService struct {
	inner  InjectorService
	logger *logger.Logger
}

// NewInjectorLoggingService returns a wrapper that logs the start, outcome
// and duration of every pass, tagged with a per-run id.
func NewInjectorLoggingService(logger *logger.Logger) InjectorServiceWrapper {
	return &InjectorLoggingService{logger: logger}
}

func (l *InjectorLoggingService) Wrap(inner InjectorService) InjectorService {
	l.inner = inner
	return l
}

func (l *InjectorLoggingService) Inject(ctx context.Context) (models.InjectionResult, error) {
	log, _ := l.logger.WithRunID()
	ctx = log.WithContext(ctx)

	log.Info().Msg("injecting firmware settings")
	start := time.Now()

	result, err := l.inner.Inject(ctx)
	if err != nil {
		log.Err(err).
			Dur("took", time.Since(start)).
			Msg("injection failed")
		return result, err
	}

	var event *zerolog.Event
	if len(result.Warnings) > 0 || len(result.Problems) > 0 {
		event = log.Warn().
			Strs("not_set", result.Warnings).
			Strs("problems", result.Problems)
	} else {
		event = log.Info()
	}
	event.
		Int("settings", len(result.Settings)).
		Int("exported", result.Exported).
		Dur("took", time.Since(start)).
		Msg("firmware settings injected")

	return result, nil
}

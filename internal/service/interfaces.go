package service

import (
	"context"

	"github.com/MKhiriev/fw-env-injector/models"
)

// InjectorService resolves the firmware settings, hands them to the build
// and mirrors them into the environment.
type InjectorService interface {
	// Inject performs one complete pass. A setting that is missing is never
	// an error: it falls back to its default and is reported.
	Inject(ctx context.Context) (models.InjectionResult, error)
}

// InjectorServiceWrapper defines middleware composition for InjectorService.
// Implementations wrap an existing InjectorService to add behavior such as
// logging.
type InjectorServiceWrapper interface {
	Wrap(InjectorService) InjectorService // returns a decorated InjectorService applying additional behavior
}

package service

import "errors"

var (
	ErrNilDependency = errors.New("injector dependency is nil")

	ErrRegisteringSetting = errors.New("error registering setting with build environment")
	ErrWritingBack        = errors.New("error writing setting back to environment")
	ErrFlushingBuild      = errors.New("error flushing build environment")
	ErrReporting          = errors.New("error writing diagnostic trace")

	// ErrInvalidSettings is returned in strict mode when the resolved
	// settings fail validation.
	ErrInvalidSettings = errors.New("invalid firmware settings")
)

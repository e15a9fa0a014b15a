package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySettingName is returned by [Schema.Validate] for a record
	// without a name.
	ErrEmptySettingName = errors.New("setting name is empty")
	// ErrDecodeSettings indicates that resolved values could not be mapped
	// onto the typed [Firmware] view (e.g. a non-numeric port).
	ErrDecodeSettings = errors.New("error decoding firmware settings")
)

// DuplicateSettingError reports a name that appears twice in a schema.
type DuplicateSettingError struct {
	Name string
}

func (e *DuplicateSettingError) Error() string {
	return fmt.Sprintf("duplicate setting %q in schema", e.Name)
}

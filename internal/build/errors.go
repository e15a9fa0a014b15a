package build

import "errors"

var (
	// ErrInvalidMacroName is returned by Define when the setting name is not
	// a valid C identifier.
	ErrInvalidMacroName = errors.New("invalid macro name")

	// ErrWritingOutput is returned by Flush when the generated output cannot
	// be written.
	ErrWritingOutput = errors.New("error writing build output")
)

package build

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Definition is one registered compile-time constant.
type Definition struct {
	Name  string
	Value string
}

// Literal returns the value as a C string literal.
func (d Definition) Literal() string {
	return Stringify(d.Value)
}

// definitions keeps registered constants in registration order. Redefining
// a name replaces its value in place.
type definitions struct {
	items []Definition
}

func (d *definitions) define(name, value string) error {
	if err := ValidateMacroName(name); err != nil {
		return err
	}

	for i := range d.items {
		if d.items[i].Name == name {
			d.items[i].Value = value
			return nil
		}
	}

	d.items = append(d.items, Definition{Name: name, Value: value})
	return nil
}

func (d *definitions) list() []Definition {
	return slices.Clone(d.items)
}

// RecorderEnvironment keeps definitions in memory. It is the sink used when
// no build output is configured, and lets tests inspect what a run
// registered.
type RecorderEnvironment struct {
	definitions
	flushes int
}

// NewRecorderEnvironment returns an empty recorder.
func NewRecorderEnvironment() *RecorderEnvironment {
	return &RecorderEnvironment{}
}

func (r *RecorderEnvironment) Define(name, value string) error {
	return r.define(name, value)
}

func (r *RecorderEnvironment) Flush() error {
	r.flushes++
	return nil
}

// Definitions returns the registered constants in registration order.
func (r *RecorderEnvironment) Definitions() []Definition {
	return r.list()
}

// Flushes returns how many times Flush was called.
func (r *RecorderEnvironment) Flushes() int {
	return r.flushes
}

// writeFileAtomic replaces path with data through a temporary file in the
// same directory. When the file already holds data it is left untouched so
// its modification time does not trigger a firmware rebuild.
func writeFileAtomic(path string, data []byte) (written bool, err error) {
	existing, err := os.ReadFile(path)
	if err == nil && slices.Equal(existing, data) {
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	if err = tmp.Close(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return false, fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return false, fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}

	return true, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package build

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// GeneratedMarker is the first line of every generated file.
const GeneratedMarker = "// Code generated by envinject. DO NOT EDIT."

// HeaderEnvironment renders definitions as a C header:
//
//	#define MQTT_HOST "localhost"
//
// The header is written on Flush and only touched when its content changes.
type HeaderEnvironment struct {
	definitions
	path  string
	guard string
}

// NewHeaderEnvironment returns a header sink writing to path. The include
// guard is derived from the file name ("firmware_env.h" → FIRMWARE_ENV_H).
func NewHeaderEnvironment(path string) *HeaderEnvironment {
	return &HeaderEnvironment{
		path:  path,
		guard: includeGuard(path),
	}
}

func (h *HeaderEnvironment) Define(name, value string) error {
	return h.define(name, value)
}

func (h *HeaderEnvironment) Flush() error {
	if _, err := writeFileAtomic(h.path, h.Render()); err != nil {
		return fmt.Errorf("header %s: %w", h.path, err)
	}

	return nil
}

// Path returns the header location.
func (h *HeaderEnvironment) Path() string {
	return h.path
}

// Render returns the header content for the current definitions.
func (h *HeaderEnvironment) Render() []byte {
	var b bytes.Buffer

	b.WriteString(GeneratedMarker + "\n\n")
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", h.guard, h.guard)
	for _, d := range h.items {
		fmt.Fprintf(&b, "#ifdef %s\n#undef %s\n#endif\n", d.Name, d.Name)
		fmt.Fprintf(&b, "#define %s %s\n\n", d.Name, d.Literal())
	}
	fmt.Fprintf(&b, "#endif // %s\n", h.guard)

	return b.Bytes()
}

func includeGuard(path string) string {
	base := strings.ToUpper(filepath.Base(path))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	guard := b.String()
	if guard == "" || (guard[0] >= '0' && guard[0] <= '9') {
		guard = "_" + guard
	}

	return guard
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report prints the human-readable trace of an injector run.
//
// The trace is line oriented and meant for people reading build output:
//
//	Processing MQTT_HOST=localhost
//	Warning: MQTT_PASSWORD is not set
//	±±± Exported Environment variable HOME=/root
//
// Prefixes are styled with lipgloss. On a terminal that supports colour
// the warning prefix is highlighted; redirected output stays plain text.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// MaskedValue replaces sensitive values when masking is enabled.
const MaskedValue = "********"

const (
	processingPrefix = "Processing"
	warningPrefix    = "Warning:"
	exportedPrefix   = "±±± Exported Environment variable"
)

// Reporter writes trace lines to an io.Writer.
type Reporter struct {
	out  io.Writer
	mask bool

	processingStyle lipgloss.Style
	warningStyle    lipgloss.Style
	exportedStyle   lipgloss.Style
}

// Option configures a [Reporter].
type Option func(*Reporter)

// WithMasking hides the values of sensitive settings and of environment
// variables that carry them.
func WithMasking(mask bool) Option {
	return func(r *Reporter) {
		r.mask = mask
	}
}

// NewReporter returns a reporter writing to out. The colour profile is
// detected from out itself.
func NewReporter(out io.Writer, opts ...Option) *Reporter {
	renderer := lipgloss.NewRenderer(out)

	r := &Reporter{
		out:             out,
		processingStyle: renderer.NewStyle().Bold(true),
		warningStyle:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		exportedStyle:   renderer.NewStyle().Faint(true),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Processing prints the resolved value of one setting.
func (r *Reporter) Processing(name, value string, sensitive bool) error {
	return r.line(r.processingStyle, processingPrefix, name+"="+r.value(value, sensitive))
}

// NotSet prints the warning for a setting that resolved to "".
func (r *Reporter) NotSet(name string) error {
	return r.line(r.warningStyle, warningPrefix, name+" is not set")
}

// Problem prints a validation warning.
func (r *Reporter) Problem(problem error) error {
	return r.line(r.warningStyle, warningPrefix, problem.Error())
}

// Exported prints one variable of the final environment.
func (r *Reporter) Exported(key, value string, sensitive bool) error {
	return r.line(r.exportedStyle, exportedPrefix, key+"="+r.value(value, sensitive))
}

func (r *Reporter) value(value string, sensitive bool) string {
	if r.mask && sensitive && value != "" {
		return MaskedValue
	}

	return value
}

// line renders only the prefix so that values are printed byte for byte.
func (r *Reporter) line(style lipgloss.Style, prefix, text string) error {
	if _, err := fmt.Fprintf(r.out, "%s %s\n", style.Render(prefix), text); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	return nil
}

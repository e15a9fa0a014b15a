// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Setting is one record of the firmware settings schema: the name of the
// environment variable, the value used when it is unset, and how the
// injector should treat it.
type Setting struct {
	// Name is the environment variable name and the name of the
	// compile-time constant it becomes (e.g. "MQTT_PORT").
	Name string

	// Default is used verbatim when the variable is unset or empty.
	Default string

	// Required marks settings the firmware cannot work without. An empty
	// required value is reported but never aborts a default run.
	Required bool

	// Sensitive marks credentials that are masked in the trace when
	// masking is enabled.
	Sensitive bool
}

// ResolvedSetting is the final value of a [Setting] after applying the
// environment override or the schema default.
type ResolvedSetting struct {
	Name  string
	Value string

	// FromDefault reports whether Value came from the schema default.
	FromDefault bool
	Required    bool
	Sensitive   bool
}

// IsEmpty reports whether the resolved value is the empty string.
func (s ResolvedSetting) IsEmpty() bool {
	return s.Value == ""
}

// InjectionResult summarizes one injector run.
type InjectionResult struct {
	// Settings holds every resolved setting in schema order.
	Settings []ResolvedSetting

	// Warnings holds the names of settings that resolved to "".
	Warnings []string

	// Problems holds validation problems of the typed settings view.
	Problems []string

	// Exported is the number of variables listed from the final environment.
	Exported int
}

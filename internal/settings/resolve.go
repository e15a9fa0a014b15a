// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"github.com/MKhiriev/fw-env-injector/models"
)

// Resolved is the outcome of [Resolve]: one entry per schema record, in
// schema order.
type Resolved []models.ResolvedSetting

// Resolve computes the final value of every setting in schema from an
// environment snapshot. A variable that is set to a non-empty value wins
// verbatim; otherwise the schema default is used.
//
// Resolve has no side effects and does not retain env, so calling it twice
// with the same arguments yields equal results.
func Resolve(schema Schema, env map[string]string) Resolved {
	resolved := make(Resolved, 0, len(schema))
	for _, setting := range schema {
		value, ok := env[setting.Name]
		fromDefault := !ok || value == ""
		if fromDefault {
			value = setting.Default
		}

		resolved = append(resolved, models.ResolvedSetting{
			Name:        setting.Name,
			Value:       value,
			FromDefault: fromDefault,
			Required:    setting.Required,
			Sensitive:   setting.Sensitive,
		})
	}

	return resolved
}

// Map returns the resolved values keyed by setting name.
func (r Resolved) Map() map[string]string {
	m := make(map[string]string, len(r))
	for _, s := range r {
		m[s.Name] = s.Value
	}

	return m
}

// Get returns the resolved value of name.
func (r Resolved) Get(name string) (string, bool) {
	for _, s := range r {
		if s.Name == name {
			return s.Value, true
		}
	}

	return "", false
}

// Empty returns the names of settings that resolved to "".
func (r Resolved) Empty() []string {
	var names []string
	for _, s := range r {
		if s.IsEmpty() {
			names = append(names, s.Name)
		}
	}

	return names
}

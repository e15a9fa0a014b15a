package build

import (
	"encoding/json"
	"fmt"
)

// Manifest is the JSON document written by [ManifestEnvironment]. It lets
// other build steps (CI checks, packaging scripts) read what was injected
// without parsing C.
type Manifest struct {
	Generator string          `json:"generator"`
	Settings  []ManifestEntry `json:"settings"`
}

// ManifestEntry is one entry of a [Manifest].
type ManifestEntry struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Literal string `json:"literal"`
}

// ManifestEnvironment writes definitions as a JSON [Manifest] on Flush.
type ManifestEnvironment struct {
	definitions
	path string
}

// NewManifestEnvironment returns a manifest sink writing to path.
func NewManifestEnvironment(path string) *ManifestEnvironment {
	return &ManifestEnvironment{path: path}
}

func (m *ManifestEnvironment) Define(name, value string) error {
	return m.define(name, value)
}

func (m *ManifestEnvironment) Flush() error {
	data, err := m.Render()
	if err != nil {
		return err
	}

	if _, err := writeFileAtomic(m.path, data); err != nil {
		return fmt.Errorf("manifest %s: %w", m.path, err)
	}

	return nil
}

// Render returns the indented manifest for the current definitions.
func (m *ManifestEnvironment) Render() ([]byte, error) {
	manifest := Manifest{
		Generator: "envinject",
		Settings:  make([]ManifestEntry, 0, len(m.items)),
	}
	for _, d := range m.items {
		manifest.Settings = append(manifest.Settings, ManifestEntry{
			Name:    d.Name,
			Value:   d.Value,
			Literal: d.Literal(),
		})
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding manifest: %w", err)
	}

	return append(data, '\n'), nil
}

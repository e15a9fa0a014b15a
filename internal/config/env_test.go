// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ENVINJECT_CONFIG": "/path/to/config.json",

		"ENVINJECT_SOURCES_DOTENV": ".env,.env.local",

		"ENVINJECT_OUTPUT_HEADER":        "include/env.h",
		"ENVINJECT_OUTPUT_MANIFEST":      "build/env.json",
		"ENVINJECT_OUTPUT_FLAGS":         "true",
		"ENVINJECT_OUTPUT_REPORT":        "stderr",
		"ENVINJECT_OUTPUT_SKIP_ENV_DUMP": "1",

		"ENVINJECT_POLICY_STRICT":       "true",
		"ENVINJECT_POLICY_MASK_SECRETS": "true",

		"ENVINJECT_LOG_LEVEL": "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, []string{".env", ".env.local"}, cfg.Sources.DotEnvFiles)

	assert.Equal(t, "include/env.h", cfg.Output.HeaderPath)
	assert.Equal(t, "build/env.json", cfg.Output.ManifestPath)
	assert.True(t, cfg.Output.BuildFlags)
	assert.Equal(t, "stderr", cfg.Output.Report)
	assert.True(t, cfg.Output.SkipEnvironmentDump)

	assert.True(t, cfg.Policy.Strict)
	assert.True(t, cfg.Policy.MaskSecrets)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ENVINJECT_OUTPUT_HEADER": "env.h",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "env.h", cfg.Output.HeaderPath)
	assert.Empty(t, cfg.Output.ManifestPath)
	assert.False(t, cfg.Output.BuildFlags)
	assert.Empty(t, cfg.Sources.DotEnvFiles)
	assert.Equal(t, Policy{}, cfg.Policy)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_IgnoresFirmwareSettings(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{})
	t.Setenv("MQTT_HOST", "broker")
	t.Setenv("OUTPUT_HEADER", "unprefixed.h")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, cfg.Output.HeaderPath)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ENVINJECT_POLICY_STRICT": "sometimes",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"ENVINJECT_CONFIG",
		"ENVINJECT_SOURCES_DOTENV",
		"ENVINJECT_OUTPUT_HEADER",
		"ENVINJECT_OUTPUT_MANIFEST",
		"ENVINJECT_OUTPUT_FLAGS",
		"ENVINJECT_OUTPUT_REPORT",
		"ENVINJECT_OUTPUT_SKIP_ENV_DUMP",
		"ENVINJECT_POLICY_STRICT",
		"ENVINJECT_POLICY_MASK_SECRETS",
		"ENVINJECT_LOG_LEVEL",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}

package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStringList_Set tests the Set method of stringList
func TestStringList_Set(t *testing.T) {
	tests := []struct {
		name        string
		inputs      []string
		expectError bool
		expected    stringList
	}{
		{
			name:     "single value",
			inputs:   []string{".env"},
			expected: stringList{".env"},
		},
		{
			name:     "repeated flag",
			inputs:   []string{".env", ".env.local"},
			expected: stringList{".env", ".env.local"},
		},
		{
			name:     "comma separated with spaces",
			inputs:   []string{".env, .env.ci"},
			expected: stringList{".env", ".env.ci"},
		},
		{
			name:        "empty element",
			inputs:      []string{".env,,x"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l stringList
			var err error
			for _, in := range tt.inputs {
				if err = l.Set(in); err != nil {
					break
				}
			}

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l)
		})
	}
}

// TestStringList_String tests the String method of stringList
func TestStringList_String(t *testing.T) {
	l := stringList{"a.env", "b.env"}
	assert.Equal(t, "a.env,b.env", l.String())

	var nilList *stringList
	assert.Equal(t, "", nilList.String())
}

func TestParseFlags_AllFlags(t *testing.T) {
	// Arrange
	args := []string{
		"-c", "cfg.json",
		"-e", ".env",
		"-dotenv", ".env.local",
		"-header", "include/env.h",
		"-manifest", "env.json",
		"-flags",
		"-report", "stderr",
		"-no-env-dump",
		"-strict",
		"-mask-secrets",
		"-log-level", "warn",
		"-version",
	}

	// Act
	cfg, err := parseFlags(args, &bytes.Buffer{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, []string{".env", ".env.local"}, cfg.Sources.DotEnvFiles)
	assert.Equal(t, "include/env.h", cfg.Output.HeaderPath)
	assert.Equal(t, "env.json", cfg.Output.ManifestPath)
	assert.True(t, cfg.Output.BuildFlags)
	assert.Equal(t, "stderr", cfg.Output.Report)
	assert.True(t, cfg.Output.SkipEnvironmentDump)
	assert.True(t, cfg.Policy.Strict)
	assert.True(t, cfg.Policy.MaskSecrets)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.ShowVersion)
	assert.Empty(t, cfg.Command)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "alias.json"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Empty(t, cfg.Sources.DotEnvFiles)
	assert.False(t, cfg.Output.BuildFlags)
	assert.Empty(t, cfg.Command)
}

func TestParseFlags_CommandAfterDoubleDash(t *testing.T) {
	cfg, err := parseFlags([]string{"-header", "env.h", "--", "pio", "run", "-e", "m5stack"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "env.h", cfg.Output.HeaderPath)
	assert.Equal(t, []string{"pio", "run", "-e", "m5stack"}, cfg.Command)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	var out bytes.Buffer

	cfg, err := parseFlags([]string{"-nope"}, &out)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "flag provided but not defined")
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer

	_, err := parseFlags([]string{"-h"}, &out)

	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "-header")
}

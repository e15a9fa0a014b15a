package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fw-env-injector/internal/logger"
	"github.com/MKhiriev/fw-env-injector/internal/mock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeDotEnv(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── LoadDotEnv ────────────────────────────────────────────────────────────────

func TestLoadDotEnv_AddsMissingVariables(t *testing.T) {
	// Arrange
	path := writeDotEnv(t, ".env", "WIFI_SSID=lab\nMQTT_HOST=broker.local\n# comment\nMQTT_TOPIC=\"sensors/dryer\"\n")
	s := NewMapEnvStore(nil)

	// Act
	result, err := LoadDotEnv(s, logger.Nop(), path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{path}, result.Loaded)
	assert.Equal(t, []string{"MQTT_HOST", "MQTT_TOPIC", "WIFI_SSID"}, result.Applied)
	assert.Equal(t, map[string]string{
		"WIFI_SSID":  "lab",
		"MQTT_HOST":  "broker.local",
		"MQTT_TOPIC": "sensors/dryer",
	}, s.Environ())
}

func TestLoadDotEnv_EnvironmentWins(t *testing.T) {
	path := writeDotEnv(t, ".env", "MQTT_HOST=from-file\nMQTT_PORT=8883\n")
	s := NewMapEnvStore(map[string]string{"MQTT_HOST": "from-env"})

	result, err := LoadDotEnv(s, logger.Nop(), path)

	require.NoError(t, err)
	assert.Equal(t, []string{"MQTT_PORT"}, result.Applied)
	host, _ := s.Lookup("MQTT_HOST")
	assert.Equal(t, "from-env", host)
}

func TestLoadDotEnv_EmptyEnvironmentValueStillWins(t *testing.T) {
	path := writeDotEnv(t, ".env", "MQTT_USERNAME=file-user\n")
	s := NewMapEnvStore(map[string]string{"MQTT_USERNAME": ""})

	_, err := LoadDotEnv(s, logger.Nop(), path)

	require.NoError(t, err)
	user, ok := s.Lookup("MQTT_USERNAME")
	assert.True(t, ok)
	assert.Empty(t, user)
}

func TestLoadDotEnv_FirstFileWins(t *testing.T) {
	first := writeDotEnv(t, "first.env", "MQTT_QOS=0\n")
	second := writeDotEnv(t, "second.env", "MQTT_QOS=2\nMQTT_RETAIN=1\n")
	s := NewMapEnvStore(nil)

	result, err := LoadDotEnv(s, logger.Nop(), first, second)

	require.NoError(t, err)
	assert.Equal(t, []string{first, second}, result.Loaded)
	assert.Equal(t, map[string]string{"MQTT_QOS": "0", "MQTT_RETAIN": "1"}, s.Environ())
}

func TestLoadDotEnv_MissingFileSkipped(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")
	s := NewMapEnvStore(nil)

	result, err := LoadDotEnv(s, logger.Nop(), missing)

	require.NoError(t, err)
	assert.Equal(t, []string{missing}, result.Missing)
	assert.Empty(t, result.Loaded)
	assert.Empty(t, s.Environ())
}

func TestLoadDotEnv_MalformedFile(t *testing.T) {
	path := writeDotEnv(t, ".env", "MQTT_TOPIC=\"unterminated\n")
	s := NewMapEnvStore(nil)

	_, err := LoadDotEnv(s, logger.Nop(), path)

	assert.ErrorIs(t, err, ErrDotEnvParse)
}

func TestLoadDotEnv_SetFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := writeDotEnv(t, ".env", "WIFI_PASS=secret\n")
	setErr := errors.New("read-only environment")

	s := mock.NewMockEnvStore(ctrl)
	gomock.InOrder(
		s.EXPECT().Lookup("WIFI_PASS").Return("", false),
		s.EXPECT().Set("WIFI_PASS", "secret").Return(setErr),
	)

	_, err := LoadDotEnv(s, logger.Nop(), path)

	assert.ErrorIs(t, err, setErr)
}

func TestLoadDotEnv_ExpandsReferences(t *testing.T) {
	// Arrange
	t.Setenv("ENVINJECT_TEST_BROKER", "broker.host")
	path := writeDotEnv(t, ".env", "WIFI_SSID=lab\nMQTT_TOPIC=${WIFI_SSID}/status\nMQTT_HOST=${ENVINJECT_TEST_BROKER}\n")
	s := NewMapEnvStore(map[string]string{"ENVINJECT_TEST_BROKER": "store.value"})

	// Act
	_, err := LoadDotEnv(s, logger.Nop(), path)

	// Assert
	require.NoError(t, err)
	topic, _ := s.Lookup("MQTT_TOPIC")
	assert.Equal(t, "lab/status", topic)
	host, _ := s.Lookup("MQTT_HOST")
	assert.Equal(t, "broker.host", host, "references resolve against the process environment, not the store")
}

package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Lines(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	r := NewReporter(&buf)

	// Act
	require.NoError(t, r.Processing("MQTT_HOST", "localhost", false))
	require.NoError(t, r.NotSet("MQTT_PASSWORD"))
	require.NoError(t, r.Problem(errors.New("MQTT_QOS: out of range")))
	require.NoError(t, r.Exported("HOME", "/root", false))

	// Assert
	expected := "Processing MQTT_HOST=localhost\n" +
		"Warning: MQTT_PASSWORD is not set\n" +
		"Warning: MQTT_QOS: out of range\n" +
		"±±± Exported Environment variable HOME=/root\n"
	assert.Equal(t, expected, buf.String())
}

func TestReporter_ValuesPrintedVerbatim(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	require.NoError(t, r.Processing("WIFI_SSID", "lab\tnet  ", false))

	assert.Equal(t, "Processing WIFI_SSID=lab\tnet  \n", buf.String())
}

func TestReporter_Masking(t *testing.T) {
	tests := []struct {
		name      string
		mask      bool
		value     string
		sensitive bool
		expected  string
	}{
		{name: "masking off", mask: false, value: "secret", sensitive: true, expected: "Processing WIFI_PASS=secret\n"},
		{name: "masked", mask: true, value: "secret", sensitive: true, expected: "Processing WIFI_PASS=" + MaskedValue + "\n"},
		{name: "not sensitive", mask: true, value: "secret", sensitive: false, expected: "Processing WIFI_PASS=secret\n"},
		{name: "empty stays empty", mask: true, value: "", sensitive: true, expected: "Processing WIFI_PASS=\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewReporter(&buf, WithMasking(tt.mask))

			require.NoError(t, r.Processing("WIFI_PASS", tt.value, tt.sensitive))

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReporter_WriteError(t *testing.T) {
	r := NewReporter(failingWriter{})

	assert.Error(t, r.Exported("A", "1", false))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_FillsMissingValues(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: N/A\n", info.String())
}

func TestResolvedSetting_IsEmpty(t *testing.T) {
	assert.True(t, ResolvedSetting{Name: "MQTT_USERNAME"}.IsEmpty())
	assert.False(t, ResolvedSetting{Name: "MQTT_PORT", Value: "1883"}.IsEmpty())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"slices"

	"github.com/MKhiriev/fw-env-injector/models"
)

// Names of the recognised firmware settings.
const (
	WiFiSSID         = "WIFI_SSID"
	WiFiPass         = "WIFI_PASS"
	MQTTHost         = "MQTT_HOST"
	MQTTPort         = "MQTT_PORT"
	MQTTUsername     = "MQTT_USERNAME"
	MQTTPassword     = "MQTT_PASSWORD"
	MQTTTopic        = "MQTT_TOPIC"
	MQTTClientID     = "MQTT_CLIENT_ID"
	MQTTQoS          = "MQTT_QOS"
	MQTTRetain       = "MQTT_RETAIN"
	MQTTCleanSession = "MQTT_CLEAN_SESSION"
	MQTTTLS          = "MQTT_TLS"
	MQTTTLSInsecure  = "MQTT_TLS_INSECURE"
	MQTTTLSCertReqs  = "MQTT_TLS_CERT_REQS"
	MQTTTLSVersion   = "MQTT_TLS_VERSION"
)

// Schema is an ordered list of setting records. The order is the order in
// which settings are registered with the build and printed in the trace.
type Schema []models.Setting

var defaultSchema = Schema{
	{Name: WiFiSSID, Default: "default_ssid", Required: true},
	{Name: WiFiPass, Default: "default_password", Required: true, Sensitive: true},
	{Name: MQTTHost, Default: "localhost", Required: true},
	{Name: MQTTPort, Default: "1883", Required: true},
	{Name: MQTTUsername, Default: ""},
	{Name: MQTTPassword, Default: "", Sensitive: true},
	{Name: MQTTTopic, Default: "default/topic", Required: true},
	{Name: MQTTClientID, Default: "default_client", Required: true},
	{Name: MQTTQoS, Default: "1", Required: true},
	{Name: MQTTRetain, Default: "0", Required: true},
	{Name: MQTTCleanSession, Default: "1", Required: true},
	{Name: MQTTTLS, Default: "0", Required: true},
	{Name: MQTTTLSInsecure, Default: "0", Required: true},
	{Name: MQTTTLSCertReqs, Default: "0", Required: true},
	{Name: MQTTTLSVersion, Default: "0", Required: true},
}

// DefaultSchema returns a copy of the firmware settings schema. Callers may
// modify the returned slice freely.
func DefaultSchema() Schema {
	return slices.Clone(defaultSchema)
}

// Names returns the setting names in schema order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for _, setting := range s {
		names = append(names, setting.Name)
	}

	return names
}

// Lookup returns the record for name.
func (s Schema) Lookup(name string) (models.Setting, bool) {
	for _, setting := range s {
		if setting.Name == name {
			return setting, true
		}
	}

	return models.Setting{}, false
}

// Validate checks that every record has a name and that names are unique.
func (s Schema) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, setting := range s {
		if setting.Name == "" {
			return ErrEmptySettingName
		}
		if _, ok := seen[setting.Name]; ok {
			return &DuplicateSettingError{Name: setting.Name}
		}
		seen[setting.Name] = struct{}{}
	}

	return nil
}

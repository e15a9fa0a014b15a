// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Certificate requirement levels for MQTT_TLS_CERT_REQS.
const (
	CertNone     uint8 = 0
	CertOptional uint8 = 1
	CertRequired uint8 = 2
)

// MaxTLSVersion is the highest accepted MQTT_TLS_VERSION. Zero selects the
// TLS library default.
const MaxTLSVersion uint8 = 3

// Firmware is the typed view of the resolved settings as the firmware
// interprets them. It is only used to check that the injected strings make
// sense; the build always receives the raw strings.
type Firmware struct {
	WiFi struct {
		SSID     string `env:"SSID"`
		Password string `env:"PASS"`
	} `envPrefix:"WIFI_"`

	MQTT struct {
		Host         string `env:"HOST"`
		Port         uint16 `env:"PORT"`
		Username     string `env:"USERNAME"`
		Password     string `env:"PASSWORD"`
		Topic        string `env:"TOPIC"`
		ClientID     string `env:"CLIENT_ID"`
		QoS          uint8  `env:"QOS"`
		Retain       bool   `env:"RETAIN"`
		CleanSession bool   `env:"CLEAN_SESSION"`

		TLS struct {
			Enabled  bool  `env:"TLS"`
			Insecure bool  `env:"TLS_INSECURE"`
			CertReqs uint8 `env:"TLS_CERT_REQS"`
			Version  uint8 `env:"TLS_VERSION"`
		}
	} `envPrefix:"MQTT_"`
}

// Decode maps resolved values onto a [Firmware] using caarlos0/env, with
// the resolved map standing in for the process environment.
func Decode(resolved Resolved) (Firmware, error) {
	var fw Firmware
	err := env.ParseWithOptions(&fw, env.Options{
		Environment: resolved.Map(),
	})
	if err != nil {
		return Firmware{}, fmt.Errorf("%w: %w", ErrDecodeSettings, err)
	}

	return fw, nil
}

// Problem describes a setting whose value the firmware would misinterpret.
type Problem struct {
	Setting string
	Reason  string
}

func (p *Problem) Error() string {
	return p.Setting + ": " + p.Reason
}

// Validate returns every problem found in fw. An empty result means the
// settings are consistent.
func (fw Firmware) Validate() []error {
	var problems []error
	add := func(setting, format string, args ...any) {
		problems = append(problems, &Problem{Setting: setting, Reason: fmt.Sprintf(format, args...)})
	}

	if fw.MQTT.Host == "" {
		add(MQTTHost, "broker host is empty")
	}
	if fw.MQTT.Port == 0 {
		add(MQTTPort, "port must be between 1 and 65535")
	}
	if fw.MQTT.QoS > 2 {
		add(MQTTQoS, "quality of service must be 0, 1 or 2, got %d", fw.MQTT.QoS)
	}
	if fw.MQTT.TLS.CertReqs > CertRequired {
		add(MQTTTLSCertReqs, "certificate requirement must be 0, 1 or 2, got %d", fw.MQTT.TLS.CertReqs)
	}
	if fw.MQTT.TLS.Version > MaxTLSVersion {
		add(MQTTTLSVersion, "TLS version must be between 0 and %d, got %d", MaxTLSVersion, fw.MQTT.TLS.Version)
	}
	if !fw.MQTT.TLS.Enabled {
		if fw.MQTT.TLS.Insecure {
			add(MQTTTLSInsecure, "has no effect while %s is off", MQTTTLS)
		}
		if fw.MQTT.TLS.CertReqs != CertNone {
			add(MQTTTLSCertReqs, "has no effect while %s is off", MQTTTLS)
		}
	}
	if fw.MQTT.Username == "" && fw.MQTT.Password != "" {
		add(MQTTPassword, "password is set without %s", MQTTUsername)
	}

	return problems
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config
// file. The command to run and the JSON path itself cannot be set here.
type StructuredJSONConfig struct {
	Sources struct {
		DotEnvFiles []string `json:"dotenv"`
	} `json:"sources,omitempty"`

	Output struct {
		HeaderPath          string `json:"header"`
		ManifestPath        string `json:"manifest"`
		BuildFlags          bool   `json:"flags"`
		Report              string `json:"report"`
		SkipEnvironmentDump bool   `json:"skip_env_dump"`
	} `json:"output,omitempty"`

	Policy struct {
		Strict      bool `json:"strict"`
		MaskSecrets bool `json:"mask_secrets"`
	} `json:"policy,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Sources: Sources{
			DotEnvFiles: jsonCfg.Sources.DotEnvFiles,
		},
		Output: Output{
			HeaderPath:          jsonCfg.Output.HeaderPath,
			ManifestPath:        jsonCfg.Output.ManifestPath,
			BuildFlags:          jsonCfg.Output.BuildFlags,
			Report:              jsonCfg.Output.Report,
			SkipEnvironmentDump: jsonCfg.Output.SkipEnvironmentDump,
		},
		Policy: Policy{
			Strict:      jsonCfg.Policy.Strict,
			MaskSecrets: jsonCfg.Policy.MaskSecrets,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

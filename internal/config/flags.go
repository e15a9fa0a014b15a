package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagSetName is the name shown in usage output.
const FlagSetName = "envinject"

// stringList collects a repeatable string flag.
// It implements the flag.Value interface.
type stringList []string

// String returns the values joined by commas.
func (l *stringList) String() string {
	if l == nil {
		return ""
	}

	return strings.Join(*l, ",")
}

// Set appends one or more comma separated values.
func (l *stringList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return errors.New("empty value in list")
		}
		*l = append(*l, part)
	}

	return nil
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-e/-dotenv .env file to load (repeatable, comma separated)
//	-header C header to generate
//	-manifest JSON manifest to generate
//	-flags print -D build flags to stdout
//	-report where to print the trace: stdout or stderr
//	-no-env-dump do not list the full environment
//	-strict fail when settings are inconsistent
//	-mask-secrets hide credentials in the trace
//	-log-level log level
//	-version print build information and exit
//
// Arguments after "--" form the command to run with the resolved
// environment.
func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	var (
		dotEnvFiles    stringList
		jsonConfigPath string
		headerPath     string
		manifestPath   string
		buildFlags     bool
		reportTarget   string
		skipEnvDump    bool
		strict         bool
		maskSecrets    bool
		logLevel       string
		showVersion    bool
	)

	fs := flag.NewFlagSet(FlagSetName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Var(&dotEnvFiles, "e", ".env file to load (repeatable)")
	fs.Var(&dotEnvFiles, "dotenv", ".env file to load (alias)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&headerPath, "header", "", "C header to generate")
	fs.StringVar(&manifestPath, "manifest", "", "JSON manifest to generate")
	fs.BoolVar(&buildFlags, "flags", false, "Print -D build flags to stdout")
	fs.StringVar(&reportTarget, "report", "", "Trace output: stdout or stderr")
	fs.BoolVar(&skipEnvDump, "no-env-dump", false, "Do not list the full environment")
	fs.BoolVar(&strict, "strict", false, "Fail when settings are inconsistent")
	fs.BoolVar(&maskSecrets, "mask-secrets", false, "Hide credentials in the trace")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&showVersion, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Sources: Sources{
			DotEnvFiles: dotEnvFiles,
		},
		Output: Output{
			HeaderPath:          headerPath,
			ManifestPath:        manifestPath,
			BuildFlags:          buildFlags,
			Report:              reportTarget,
			SkipEnvironmentDump: skipEnvDump,
		},
		Policy: Policy{
			Strict:      strict,
			MaskSecrets: maskSecrets,
		},
		Log: Log{
			Level: logLevel,
		},
		Command:      fs.Args(),
		ShowVersion:  showVersion,
		JSONFilePath: jsonConfigPath,
	}, nil
}

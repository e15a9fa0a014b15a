// Package config provides configuration loading, merging, and validation
// facilities for the envinject tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables prefixed with ENVINJECT_
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config

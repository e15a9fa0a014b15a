// Package build contains the sinks that hand resolved settings to the
// firmware build as compile-time constants.
//
// A sink implements [Environment]. [HeaderEnvironment] generates a C
// header, [FlagsEnvironment] prints -D compiler flags for PlatformIO,
// [ManifestEnvironment] writes a JSON manifest and [RecorderEnvironment]
// keeps everything in memory. [Multi] combines several sinks.
package build

// Package settings holds the schema of the firmware settings and the pure
// functions that resolve them from an environment snapshot.
//
// Resolution never fails: a variable that is unset or empty falls back to
// the default recorded in the [Schema]. The typed [Firmware] view is an
// optional second pass used to warn about values the firmware would
// misinterpret.
package settings

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Log messages shared by the entry point and the application runtime.
// Keeping them in one place keeps the wording of build logs consistent,
// which matters when CI jobs grep for them.
const (
	// MsgConfigError is logged when the tool configuration cannot be built.
	MsgConfigError = "error getting configs"

	// MsgInitError is logged when the runtime cannot be wired.
	MsgInitError = "init envinject app error"

	// MsgInjectionError is logged when the injector pass fails.
	MsgInjectionError = "firmware settings injection failed"

	// MsgCommandFailed is logged when the wrapped build command exits with
	// a non-zero status.
	MsgCommandFailed = "build command failed"

	// MsgNoBuildOutput is logged when neither a header, a manifest nor
	// build flags were requested.
	MsgNoBuildOutput = "no build output configured, settings are only mirrored into the environment"

	// MsgDotEnvLoaded is logged after .env files were layered under the
	// environment.
	MsgDotEnvLoaded = "dotenv files processed"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the envinject runtime.
//
// It wires the environment store, the build sinks, the trace reporter and
// the injector service from the tool configuration, runs a single injector
// pass, and optionally executes a build command with the resolved
// environment.
package app

// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

/*
Package project binds the environment contract a Velocitas host hands to
its package scripts: workspace, package and cache directories, the project
language, the JSON-encoded app manifest and the JSON-encoded cache data.

# Basic Usage

Load the configuration once at startup and pass it by reference:

	cfg, err := project.FromEnvironment()
	if err != nil {
		// a required variable is missing or carries a malformed value
	}

	logFile, err := cfg.CreateLogFile("seat-service", "runtime_kanto")
	if err != nil {
		return err
	}
	defer logFile.Close()

Every required variable is validated eagerly inside Load, so a Config in
hand means the full contract was present and well-formed. The Reader
parameter of Load exists for tests; see the env package.

# Filesystem Layout

Log files are placed at

	<workspace>/logs/<runtimeID>/<serviceID>.log

with parent directories created on demand.
*/
package project

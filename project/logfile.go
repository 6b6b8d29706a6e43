// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// LogFilePath returns the log file path for a service and runtime within
// the given workspace directory:
//
//	<workspaceDir>/logs/<runtimeID>/<serviceID>.log
//
// This is the injectable, testable form. Use Config.LogFilePath for the
// loaded workspace.
func LogFilePath(workspaceDir, serviceID, runtimeID string) string {
	return filepath.Join(workspaceDir, "logs", runtimeID, serviceID+".log")
}

// LogFilePath returns the log file path for a service and runtime within
// the configured workspace.
func (c *Config) LogFilePath(serviceID, runtimeID string) string {
	return LogFilePath(c.WorkspaceDir, serviceID, runtimeID)
}

// CreateLogFile creates the log file for a service and runtime, creating
// any missing parent directories and truncating an existing file. The
// caller owns the returned handle and must close it.
func (c *Config) CreateLogFile(serviceID, runtimeID string) (*os.File, error) {
	path := c.LogFilePath(serviceID, runtimeID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", path, err)
	}
	return f, nil
}

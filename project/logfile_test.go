// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFilePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		filepath.Join("/ws", "logs", "rt", "svc.log"),
		LogFilePath("/ws", "svc", "rt"),
	)

	cfg := &Config{WorkspaceDir: "/ws"}
	assert.Equal(t,
		filepath.Join("/ws", "logs", "runtime_kanto", "seat-service.log"),
		cfg.LogFilePath("seat-service", "runtime_kanto"),
	)
}

func TestConfig_CreateLogFile(t *testing.T) {
	t.Parallel()

	cfg := &Config{WorkspaceDir: t.TempDir()}

	f, err := cfg.CreateLogFile("svc", "rt")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	// Parent directories are created on demand.
	wantPath := filepath.Join(cfg.WorkspaceDir, "logs", "rt", "svc.log")
	assert.Equal(t, wantPath, f.Name())
	_, err = os.Stat(wantPath)
	require.NoError(t, err)

	// The handle is writable.
	_, err = f.WriteString("log line\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	assert.Equal(t, "log line\n", string(got))
}

func TestConfig_CreateLogFile_TruncatesExisting(t *testing.T) {
	t.Parallel()

	cfg := &Config{WorkspaceDir: t.TempDir()}

	first, err := cfg.CreateLogFile("svc", "rt")
	require.NoError(t, err)
	_, err = first.WriteString("old content\n")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := cfg.CreateLogFile("svc", "rt")
	require.NoError(t, err)
	require.NoError(t, second.Close())

	got, err := os.ReadFile(cfg.LogFilePath("svc", "rt"))
	require.NoError(t, err)
	assert.Empty(t, string(got))
}

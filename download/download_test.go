// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Download(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte("velocitas"), 4096) // larger than one chunk
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}))
	t.Cleanup(server.Close)

	t.Run("writes the exact body and creates parent directories", func(t *testing.T) {
		t.Parallel()
		c, err := New()
		require.NoError(t, err)

		localPath := filepath.Join(t.TempDir(), "nested", "deeper", "payload.bin")
		require.NoError(t, c.Download(context.Background(), server.URL, localPath))

		got, err := os.ReadFile(localPath)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		t.Parallel()
		c, err := New()
		require.NoError(t, err)

		localPath := filepath.Join(t.TempDir(), "payload.bin")
		require.NoError(t, os.WriteFile(localPath, []byte("stale content"), 0o600))

		require.NoError(t, c.Download(context.Background(), server.URL, localPath))

		got, err := os.ReadFile(localPath)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("small chunk size still yields the exact body", func(t *testing.T) {
		t.Parallel()
		c, err := New(WithChunkSize(7))
		require.NoError(t, err)

		localPath := filepath.Join(t.TempDir(), "payload.bin")
		require.NoError(t, c.Download(context.Background(), server.URL, localPath))

		got, err := os.ReadFile(localPath)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})
}

func TestClient_Download_StatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	c, err := New()
	require.NoError(t, err)

	localPath := filepath.Join(t.TempDir(), "payload.bin")
	err = c.Download(context.Background(), server.URL, localPath)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.HTTPCode())
	assert.Contains(t, statusErr.Error(), "404")

	// The error body is not written to disk.
	_, err = os.Stat(localPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClient_Download_SendsConfiguredHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(server.Close)

	c, err := New(WithHeader("Authorization", "Bearer token-123"))
	require.NoError(t, err)

	localPath := filepath.Join(t.TempDir(), "out")
	require.NoError(t, c.Download(context.Background(), server.URL, localPath))
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestClient_Download_InvalidURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
	}{
		{name: "empty", uri: ""},
		{name: "unsupported scheme", uri: "ftp://example.com/file"},
		{name: "missing host", uri: "https:///file"},
		{name: "fragment", uri: "https://example.com/file#part"},
		{name: "no scheme", uri: "example.com/file"},
	}

	c, err := New()
	require.NoError(t, err)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := c.Download(context.Background(), tt.uri, filepath.Join(t.TempDir(), "out"))
			assert.Error(t, err)
		})
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := New(WithHeader("Bad\r\nName", "value"))
	assert.Error(t, err)

	_, err = New(WithHeader("X-Ok", "bad\x00value"))
	assert.Error(t, err)

	_, err = New(WithChunkSize(0))
	assert.Error(t, err)
}

func TestClient_DownloadToCache(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"model": "vss"}`))
	}))
	t.Cleanup(server.Close)

	cacheRoot := t.TempDir()
	c, err := New(WithCacheRoot(cacheRoot))
	require.NoError(t, err)

	localPath, err := c.DownloadToCache(context.Background(), server.URL+"/models/vss.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cacheRoot, "vss.json"), localPath)

	got, err := os.ReadFile(localPath)
	require.NoError(t, err)
	assert.Equal(t, `{"model": "vss"}`, string(got))
}

func TestClient_DownloadToCache_NoFileName(t *testing.T) {
	t.Parallel()

	c, err := New(WithCacheRoot(t.TempDir()))
	require.NoError(t, err)

	_, err = c.DownloadToCache(context.Background(), "https://example.com/")
	assert.Error(t, err)
}

func TestFile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("content"))
	}))
	t.Cleanup(server.Close)

	localPath := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, File(server.URL, localPath))

	got, err := os.ReadFile(localPath)
	require.NoError(t, err)
	assert.Equal(t, "content", string(got))
}

func TestCacheRoot(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		filepath.Join("/home/user/.cache", "velocitas", "downloads"),
		CacheRoot("/home/user/.cache"),
	)
	assert.NotEmpty(t, DefaultCacheRoot())
}

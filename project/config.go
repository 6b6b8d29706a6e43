// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eclipse-velocitas/velocitas-lib-go/env"
	"github.com/eclipse-velocitas/velocitas-lib-go/manifest"
)

// Environment variables making up the host contract. All of them are
// required; Load fails if any is unset or empty.
const (
	// EnvWorkspaceDir holds the project workspace directory.
	EnvWorkspaceDir = "VELOCITAS_WORKSPACE_DIR"

	// EnvAppManifest holds the JSON-encoded app manifest.
	EnvAppManifest = "VELOCITAS_APP_MANIFEST"

	// EnvPackageDir holds the directory of the package the running script
	// belongs to.
	EnvPackageDir = "VELOCITAS_PACKAGE_DIR"

	// EnvCacheDir holds the project's cache directory.
	EnvCacheDir = "VELOCITAS_CACHE_DIR"

	// EnvCacheData holds the JSON-encoded project cache object.
	EnvCacheData = "VELOCITAS_CACHE_DATA"

	// EnvLanguage holds the programming language of the project.
	// Historically lower-case, unlike the VELOCITAS_* variables.
	EnvLanguage = "language"
)

// ErrCacheDataNotObject indicates cache data that decoded to something
// other than a JSON object.
var ErrCacheDataNotObject = errors.New("VELOCITAS_CACHE_DATA must be a JSON object")

// Config carries the per-project configuration handed to package scripts
// through the environment. It is populated once by Load with every
// required field validated eagerly, then passed by reference.
type Config struct {
	// WorkspaceDir is the project workspace directory.
	WorkspaceDir string

	// PackageDir is the directory of the owning package.
	PackageDir string

	// CacheDir is the project's cache directory.
	CacheDir string

	// Language is the programming language of the project.
	Language string

	// Manifest is the decoded app manifest, normalized to a single object.
	Manifest manifest.Manifest

	// CacheData holds the decoded project cache object.
	CacheData map[string]any
}

// Load reads and validates the full environment contract through the
// given reader. Every required variable is checked up front; the first
// missing variable, decode failure or shape mismatch aborts the load.
func Load(r env.Reader) (*Config, error) {
	workspaceDir, err := env.Require(r, EnvWorkspaceDir)
	if err != nil {
		return nil, err
	}
	packageDir, err := env.Require(r, EnvPackageDir)
	if err != nil {
		return nil, err
	}
	cacheDir, err := env.Require(r, EnvCacheDir)
	if err != nil {
		return nil, err
	}
	language, err := env.Require(r, EnvLanguage)
	if err != nil {
		return nil, err
	}

	manifestJSON, err := env.Require(r, EnvAppManifest)
	if err != nil {
		return nil, err
	}
	m, err := manifest.Parse([]byte(manifestJSON))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvAppManifest, err)
	}

	cacheJSON, err := env.Require(r, EnvCacheData)
	if err != nil {
		return nil, err
	}
	cacheData, err := decodeCacheData([]byte(cacheJSON))
	if err != nil {
		return nil, err
	}

	return &Config{
		WorkspaceDir: workspaceDir,
		PackageDir:   packageDir,
		CacheDir:     cacheDir,
		Language:     language,
		Manifest:     m,
		CacheData:    cacheData,
	}, nil
}

// FromEnvironment loads the configuration from the process environment.
func FromEnvironment() (*Config, error) {
	return Load(&env.OSReader{})
}

// decodeCacheData decodes cache data and enforces the object shape.
func decodeCacheData(data []byte) (map[string]any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", EnvCacheData, err)
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrCacheDataNotObject, value)
	}
	return obj, nil
}

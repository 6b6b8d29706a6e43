// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

// Package platform normalizes CPU architecture names to the canonical
// tokens used across Velocitas package manifests.
package platform

import (
	"errors"
	"fmt"
	"strings"
)

// Canonical architecture tokens.
const (
	ArchX8664   = "x86_64"
	ArchAarch64 = "aarch64"
)

// ErrUnknownArchitecture indicates an architecture string that maps to no
// canonical token.
var ErrUnknownArchitecture = errors.New("unknown architecture")

// NormalizeArch maps an architecture string to its canonical token.
// Any string containing "x86_64" or "amd64" maps to "x86_64"; any string
// containing "aarch64" or "arm64" maps to "aarch64". Everything else
// fails with an error wrapping ErrUnknownArchitecture.
func NormalizeArch(arch string) (string, error) {
	switch {
	case strings.Contains(arch, "x86_64"), strings.Contains(arch, "amd64"):
		return ArchX8664, nil
	case strings.Contains(arch, "aarch64"), strings.Contains(arch, "arm64"):
		return ArchAarch64, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownArchitecture, arch)
}

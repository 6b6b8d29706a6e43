// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotSet indicates that a required environment variable is unset or empty.
var ErrNotSet = errors.New("environment variable not set")

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// Require returns the value of the named environment variable.
// An unset variable and a variable set to the empty string are the
// same failure; both return an error wrapping ErrNotSet.
func Require(r Reader, name string) (string, error) {
	value := r.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%w: %q", ErrNotSet, name)
	}
	return value, nil
}

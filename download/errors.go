// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"fmt"
	"net/http"
)

// StatusError reports a download request that was answered with a
// non-success HTTP status. It carries the status code through the call
// stack so callers can react to specific responses via errors.As.
type StatusError struct {
	// URI is the requested resource.
	URI string

	// Code is the HTTP status code of the response.
	Code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("downloading %s: unexpected status %d %s", e.URI, e.Code, http.StatusText(e.Code))
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *StatusError) HTTPCode() int {
	return e.Code
}

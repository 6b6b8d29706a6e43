// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"fmt"
	"net/url"

	"golang.org/x/net/http/httpguts"
)

// validateDownloadURI validates that a URI is usable as a download source.
//
// A valid download URI must:
//   - Include an http or https scheme
//   - Include a host
//   - Not contain fragments
func validateDownloadURI(uri string) error {
	if uri == "" {
		return fmt.Errorf("download URI cannot be empty")
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("invalid download URI: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("download URI must use http or https: %s", uri)
	}
	if parsed.Host == "" {
		return fmt.Errorf("download URI must include a host: %s", uri)
	}
	if parsed.Fragment != "" {
		return fmt.Errorf("download URI must not contain fragments (#): %s", uri)
	}

	return nil
}

// validateHeaderName validates that a string is a valid HTTP header name per RFC 7230.
// It checks for CRLF injection, control characters, and ensures RFC token compliance.
func validateHeaderName(name string) error {
	if name == "" {
		return fmt.Errorf("header name cannot be empty")
	}

	// Length limit to prevent DoS
	if len(name) > 256 {
		return fmt.Errorf("header name exceeds maximum length of 256 bytes")
	}

	// Use httpguts validation (same as Go's HTTP/2 implementation)
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("invalid HTTP header name: contains invalid characters")
	}

	return nil
}

// validateHeaderValue validates that a string is a valid HTTP header value per RFC 7230.
// It checks for CRLF injection and control characters.
func validateHeaderValue(value string) error {
	if value == "" {
		return fmt.Errorf("header value cannot be empty")
	}

	// Length limit to prevent DoS (common HTTP server limit)
	if len(value) > 8192 {
		return fmt.Errorf("header value exceeds maximum length of 8192 bytes")
	}

	// Use httpguts validation
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid HTTP header value: contains control characters")
	}

	return nil
}

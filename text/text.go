// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelCase converts a hyphen-delimited string to camel case.
// The input is lower-cased first, so "SEAT-adjuster" and "seat-adjuster"
// both yield "SeatAdjuster". Empty input yields an empty string.
func CamelCase(s string) string {
	var b strings.Builder
	for _, segment := range strings.Split(strings.ToLower(s), "-") {
		if segment == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(segment)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(segment[size:])
	}
	return b.String()
}

// Truncate returns s unchanged if it is shorter than length. Otherwise it
// returns "..." followed by the rightmost length-3 characters, so the
// result is exactly length characters long.
//
// For length <= 3 the cut index 3-length is non-negative and counts from
// the front of the string instead, matching the slice arithmetic this
// helper has always used.
func Truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) < length {
		return s
	}

	idx := 3 - length
	if idx < 0 {
		idx += len(runes)
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(runes) {
		idx = len(runes)
	}
	return "..." + string(runes[idx:])
}

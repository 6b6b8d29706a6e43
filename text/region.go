// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// MapFunc transforms a captured line before it is appended to the result.
type MapFunc func(line string) string

// CaptureRegion collects the lines of r between a line whose trimmed
// content equals startMarker and the next line whose trimmed content
// equals endMarker. The marker lines themselves are never part of the
// result. A repeated start marker while capturing re-arms the capture but
// is not collected. If no end marker follows, the region stays open until
// EOF.
//
// Captured lines have trailing whitespace removed and are then passed
// through fn when it is non-nil.
func CaptureRegion(r io.Reader, startMarker, endMarker string, fn MapFunc) ([]string, error) {
	var captured []string
	capturing := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.TrimSpace(line) == startMarker:
			capturing = true
		case strings.TrimSpace(line) == endMarker:
			capturing = false
		case capturing:
			line = strings.TrimRightFunc(line, unicode.IsSpace)
			if fn != nil {
				line = fn(line)
			}
			captured = append(captured, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning input: %w", err)
	}
	return captured, nil
}

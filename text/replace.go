// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"os"
	"strings"
)

// ReplaceInFile replaces every literal occurrence of find with replace in
// the file at path. The file is read completely, transformed line by line
// and rewritten in place. Replacement never matches across line
// boundaries.
//
// The rewrite is not atomic; a failure mid-write can leave a partially
// rewritten file.
func ReplaceInFile(path, find, replace string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var b strings.Builder
	b.Grow(len(data))
	for _, line := range strings.SplitAfter(string(data), "\n") {
		b.WriteString(strings.ReplaceAll(line, find, replace))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

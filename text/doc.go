// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

/*
Package text provides the string and text-file helpers shared by Velocitas
package scripts: case conversion, right-anchored truncation, marker-delimited
region capture and literal in-file substitution.

# Basic Usage

	name := text.CamelCase("seat-adjuster")   // "SeatAdjuster"
	short := text.Truncate(longPath, 32)      // "...ghtmost/29/characters/of/path"

Capture the lines between two marker lines of a file:

	f, _ := os.Open("Dockerfile")
	defer f.Close()
	deps, err := text.CaptureRegion(f, "# deps-start", "# deps-end", nil)

# Guarantees

All helpers are stateless. ReplaceInFile performs a full
read-transform-rewrite cycle and is deliberately not atomic: a failure
mid-write can leave a partially rewritten file behind.
*/
package text

// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

/*
Package manifest decodes Velocitas app manifests and normalizes them to a
single object.

Manifests appear in two shapes in the wild: a plain JSON object, and a
legacy form wrapping that object in a single-element array. Parse accepts
both and always hands back the object:

	m, err := manifest.Parse([]byte(os.Getenv("VELOCITAS_APP_MANIFEST")))
	if err != nil {
		// invalid JSON or neither accepted shape
	}
	fmt.Println(m.Name())

Manifest files on disk load through ParseFile, which also accepts YAML
documents by extension.

# Schema Validation

Validate checks a manifest against the embedded app manifest schema.
Parsing and validation are deliberately separate steps; hosts that only
need to read a field do not pay for validation:

	if err := m.Validate(); err != nil {
		// one numbered line per schema violation
	}
*/
package manifest

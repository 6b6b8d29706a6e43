// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidShape indicates a manifest document that is neither an object
// nor an array whose first element is an object.
var ErrInvalidShape = errors.New("manifest must be an object or an array of objects")

// Manifest is a decoded app manifest, normalized to a single object.
type Manifest map[string]any

// Parse decodes a JSON app manifest. Two document shapes are accepted, in
// this order: a single object, or a non-empty array whose first element is
// an object (legacy manifests wrap the document in an array). Anything
// else fails with an error wrapping ErrInvalidShape.
func Parse(data []byte) (Manifest, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("decoding manifest JSON: %w", err)
	}
	return fromDecoded(value)
}

// ParseFile loads an app manifest document from disk. Files with a .yaml
// or .yml extension are decoded as YAML; everything else is decoded as
// JSON via Parse. The same document shapes are accepted either way.
func ParseFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var value any
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("decoding manifest YAML %s: %w", path, err)
		}
		return fromDecoded(value)
	default:
		return Parse(data)
	}
}

// fromDecoded normalizes a decoded document to a single object.
// The object variant wins over the array variant.
func fromDecoded(value any) (Manifest, error) {
	switch v := value.(type) {
	case map[string]any:
		return Manifest(v), nil
	case []any:
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: array is empty", ErrInvalidShape)
		}
		first, ok := v[0].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: first array element is %T", ErrInvalidShape, v[0])
		}
		return Manifest(first), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidShape, value)
	}
}

// Name returns the manifest's "name" field, or the empty string when the
// field is absent or not a string.
func (m Manifest) Name() string {
	name, _ := m["name"].(string)
	return name
}

// SPDX-License-Identifier: MIT

package options

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FromMap builds a Config from loosely typed values keyed by field name.
// Implementation:
//   - Stage 1: start from Default().
//   - Stage 2: for each known key present in values, convert and assign.
//
// Behavior highlights:
//   - Missing keys keep their defaults; unknown keys are ignored.
//   - A nil map yields Default().
//
// Errors:
//   - ErrInvalidConfiguration (wrapped with key and value) on conversion failure.
//     No partial Config is returned.
//
// Complexity: O(1) per known key.
func FromMap(values map[string]any) (Config, error) {
	cfg := Default()

	if v, ok := values[KeyFocalLength]; ok {
		f, err := toFloat32(KeyFocalLength, v)
		if err != nil {
			return Config{}, fmt.Errorf("FromMap: %w", err)
		}
		cfg.FocalLength = f
	}

	return cfg, nil
}

// Load decodes a single YAML document from r and converts it via FromMap.
// An empty document yields Default().
//
// Errors:
//   - ErrInvalidConfiguration when the document is malformed, is not a
//     mapping, or carries a value FromMap rejects.
func Load(r io.Reader) (Config, error) {
	var values map[string]any
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("Load: %w: %w", ErrInvalidConfiguration, err)
	}

	cfg, err := FromMap(values)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}

	return cfg, nil
}

// LoadFile opens path and calls Load. I/O errors are returned as-is (they
// are not configuration errors) and keep their *fs.PathError shape.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SPDX-License-Identifier: MIT

// Package options holds the page-dewarp configuration consumed by the
// geometry packages.
//
// A Config is a plain value. It can be assembled three ways:
//
//   - New(opts ...Option): documented defaults plus functional overrides.
//   - FromMap(values): loosely typed input (decoded documents, flag maps),
//     converted field by field into 32-bit floats.
//   - Load / LoadFile: a YAML document, decoded with gopkg.in/yaml.v3 and
//     routed through FromMap so every source shares one conversion policy.
//
// Keys follow the upper-case names used by the page-dewarp tooling
// (FOCAL_LENGTH). Unknown keys are ignored. A value that cannot be
// converted into a float32 fails with an error wrapping
// ErrInvalidConfiguration; no range validation is applied beyond that.
package options

// SPDX-License-Identifier: MIT

package options

// ---------- Defaults (single source of truth) ----------

const (
	// KeyFocalLength is the document/map key read into Config.FocalLength.
	KeyFocalLength = "FOCAL_LENGTH"

	// DefaultFocalLength is the normalized focal length of the assumed camera.
	DefaultFocalLength float32 = 1.2
)

// Config carries the settings read by the geometry packages.
// The zero value is NOT the default configuration; use Default or New.
type Config struct {
	// FocalLength is reused for both the horizontal and vertical scale of the
	// intrinsic matrix. Units are whatever the caller's pixel space uses.
	FocalLength float32 `yaml:"FOCAL_LENGTH"`
}

// Option mutates a Config under construction. Applied in order by New;
// last-writer-wins.
type Option func(*Config)

// Default returns the documented default configuration.
// Complexity: O(1).
func Default() Config {
	return Config{
		FocalLength: DefaultFocalLength,
	}
}

// New returns Default() with opts applied in order.
// Implementation:
//   - Stage 1: start from documented defaults.
//   - Stage 2: apply each option; later options overwrite earlier ones.
//
// Complexity: O(len(opts)).
func New(opts ...Option) Config {
	cfg := Default()
	for _, set := range opts {
		if set == nil {
			continue // tolerate conditional option lists
		}
		set(&cfg)
	}

	return cfg
}

// WithFocalLength sets Config.FocalLength.
// No range check is made: zero, negative and non-finite values are kept as
// given and flow through to the intrinsic matrix unchanged.
func WithFocalLength(f float32) Option {
	return func(c *Config) { c.FocalLength = f }
}

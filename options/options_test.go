// SPDX-License-Identifier: MIT
package options_test

import (
	"testing"

	"github.com/katalvlaran/pagedewarp/options"
	"github.com/stretchr/testify/require"
)

// TestDefault_Documented verifies Default() matches the documented constants.
func TestDefault_Documented(t *testing.T) {
	cfg := options.Default()
	require.Equal(t, options.DefaultFocalLength, cfg.FocalLength)
	require.Equal(t, cfg, options.New()) // New without options equals Default
}

// TestNew_LastWriterWins ensures options apply in order and nil entries are skipped.
func TestNew_LastWriterWins(t *testing.T) {
	cfg := options.New(options.WithFocalLength(3), nil, options.WithFocalLength(1000))
	require.Equal(t, float32(1000), cfg.FocalLength)
}

// TestWithFocalLength_NoValidation keeps degenerate values as given.
func TestWithFocalLength_NoValidation(t *testing.T) {
	for _, f := range []float32{0, -1, 1e-30} {
		require.Equal(t, f, options.New(options.WithFocalLength(f)).FocalLength)
	}
}

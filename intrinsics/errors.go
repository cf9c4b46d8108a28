// SPDX-License-Identifier: MIT
// Package intrinsics: sentinel error set.
// Every message is prefixed with "intrinsics: ...". Detection sites wrap with
// method context via fmt.Errorf("...: %w", ErrX); callers match with errors.Is.

package intrinsics

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside [0,3).
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("intrinsics: index out of range")

	// ErrDimensionMismatch indicates a source matrix that is not 3×3.
	ErrDimensionMismatch = errors.New("intrinsics: dimension mismatch")

	// ErrNilMatrix indicates that a nil source matrix was passed in.
	ErrNilMatrix = errors.New("intrinsics: nil matrix")

	// ErrNotRepresentable indicates a finite float64 element outside the
	// float32 range.
	ErrNotRepresentable = errors.New("intrinsics: value not representable as float32")
)

// matrixErrorf wraps an error with Matrix method context and coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

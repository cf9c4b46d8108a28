// SPDX-License-Identifier: MIT

package intrinsics

import (
	"fmt"
	"math"
	"strings"
)

// Size is the row and column count of every Matrix.
const Size = 3

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxFromDense = "FromDense"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a 3×3 row-major matrix of float32 values.
// It is a value type: assignment and function arguments copy all nine
// elements, so two Matrix values never share storage.
type Matrix [Size][Size]float32

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix{}

// Rows returns the number of rows (always 3).
func (m Matrix) Rows() int { return Size }

// Cols returns the number of columns (always 3).
func (m Matrix) Cols() int { return Size }

// At returns the element at (row, col).
// Errors:
//   - ErrOutOfRange (wrapped with coordinates) when row or col is outside [0,3).
//
// Complexity: O(1).
func (m Matrix) At(row, col int) (float32, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0, matrixErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m[row][col], nil
}

// FocalLength returns the horizontal scale factor, element (0,0).
func (m Matrix) FocalLength() float32 { return m[0][0] }

// IsIntrinsic reports whether m has the idealized intrinsic shape:
// m[0][0] and m[1][1] bitwise equal, m[2][2] == 1, and every other element
// equal to zero (either sign).
// Complexity: O(1).
func (m Matrix) IsIntrinsic() bool {
	if math.Float32bits(m[0][0]) != math.Float32bits(m[1][1]) {
		return false
	}
	if m[2][2] != 1 {
		return false
	}
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			if i != j && m[i][j] != 0 {
				return false
			}
		}
	}

	return true
}

// Equal reports whether m and other are bitwise identical, element by
// element. Unlike ==, two NaNs with the same payload compare equal and
// +0 differs from -0.
func (m Matrix) Equal(other Matrix) bool {
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			if math.Float32bits(m[i][j]) != math.Float32bits(other[i][j]) {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer: one bracketed, comma-separated row per line,
// values in %g with float32 precision.
func (m Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < Size; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < Size; j++ {
			fmt.Fprintf(&sb, "%g", m[i][j])
			if j < Size-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// MarshalYAML implements yaml.Marshaler, emitting the rows as a sequence of
// three-element sequences.
func (m Matrix) MarshalYAML() (interface{}, error) {
	rows := make([][]float32, Size)
	for i := range rows {
		rows[i] = []float32{m[i][0], m[i][1], m[i][2]}
	}

	return rows, nil
}

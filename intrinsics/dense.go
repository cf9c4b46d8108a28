// SPDX-License-Identifier: MIT

package intrinsics

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dense returns a float64 copy of m as a *mat.Dense.
// The result owns its backing slice; mutating it never affects m.
// Complexity: O(1).
func (m Matrix) Dense() *mat.Dense {
	data := make([]float64, 0, Size*Size)
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			data = append(data, float64(m[i][j]))
		}
	}

	return mat.NewDense(Size, Size, data)
}

// FromDense narrows a 3×3 gonum matrix into a Matrix.
// Implementation:
//   - Stage 1: reject nil and non-3×3 sources.
//   - Stage 2: copy element by element, refusing finite values beyond float32.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrDimensionMismatch when src is not 3×3.
//   - ErrNotRepresentable (wrapped with coordinates) on float32 overflow.
//
// Notes:
//   - NaN and ±Inf elements are carried over unchanged.
func FromDense(src mat.Matrix) (Matrix, error) {
	var out Matrix
	if src == nil {
		return out, ErrNilMatrix
	}
	if d, ok := src.(*mat.Dense); ok && d == nil {
		return out, ErrNilMatrix // typed nil would panic inside Dims
	}
	if r, c := src.Dims(); r != Size || c != Size {
		return out, ErrDimensionMismatch
	}

	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			v := src.At(i, j)
			if !math.IsInf(v, 0) && !math.IsNaN(v) && math.Abs(v) > math.MaxFloat32 {
				return Matrix{}, matrixErrorf(ctxFromDense, i, j, ErrNotRepresentable)
			}
			out[i][j] = float32(v)
		}
	}

	return out, nil
}

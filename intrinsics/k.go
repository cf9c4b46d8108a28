// SPDX-License-Identifier: MIT

package intrinsics

import "github.com/katalvlaran/pagedewarp/options"

// K returns the default intrinsic matrix for cfg.
// Implementation:
//   - Stage 1: start from the zero Matrix.
//   - Stage 2: write cfg.FocalLength to (0,0) and (1,1), and 1 to (2,2).
//
// Behavior highlights:
//   - Pure and deterministic: identical cfg yields a bitwise-identical result.
//   - No validation: zero, negative and non-finite focal lengths are copied
//     through as given.
//   - The result is a fresh value owned by the caller.
//
// Complexity:
//   - Time O(1), Space O(1).
func K(cfg options.Config) Matrix {
	var k Matrix
	k[0][0] = cfg.FocalLength
	k[1][1] = cfg.FocalLength
	k[2][2] = 1

	return k
}

// Build resolves opts over options.Default and returns K for the result.
func Build(opts ...options.Option) Matrix {
	return K(options.New(opts...))
}

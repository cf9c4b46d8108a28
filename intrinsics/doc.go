// SPDX-License-Identifier: MIT

// Package intrinsics builds the default camera intrinsic matrix K.
//
// What & Why:
//
//	K maps camera-space coordinates to image-plane coordinates. The default
//	camera assumed by the dewarping pipeline is idealized: one focal length
//	reused on both axes, no principal-point offset, no skew:
//
//	    [ f  0  0 ]
//	    [ 0  f  0 ]
//	    [ 0  0  1 ]
//
//	Matrix is a fixed-shape [3][3]float32 value, so results are owned by the
//	caller and copying one never aliases another.
//
// Interop:
//
//	Dense/FromDense bridge to gonum.org/v1/gonum/mat for downstream float64
//	linear algebra. Matrix also implements yaml.Marshaler.
//
// Complexity:
//
//	Every operation in this package is O(1) (nine elements).
package intrinsics

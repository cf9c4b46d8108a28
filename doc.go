// Package pagedewarp holds the camera model defaults used by the page
// dewarping pipeline.
//
// What lives here:
//
//	options/        — Config (FOCAL_LENGTH), functional options, YAML loading
//	intrinsics/     — the default intrinsic matrix K and its gonum bridge
//	cmd/kmatrix/    — command-line printer for K
//
// Quick example:
//
//	k := intrinsics.K(options.New(options.WithFocalLength(1000)))
//	fmt.Print(k)
//
//	[1000, 0, 0]
//	[0, 1000, 0]
//	[0, 0, 1]
//
// Everything is pure Go and stateless; every call returns a fresh value.
//
//	go get github.com/katalvlaran/pagedewarp
package pagedewarp

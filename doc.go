// Package linalg is a small dense linear-algebra engine: real matrices and
// vectors, the usual arithmetic, and a determinant / cofactor / inverse
// pipeline built on recursive Laplace expansion.
//
// 🚀 What is in the box?
//
//	• Matrices: construction from a rectangular grid, factories, in-place
//	  row/column/data replacement, add/sub/scale/mul/transpose, sub-matrix,
//	  determinant, cofactor, adjugate and inverse
//	• Vectors: dot product, add/sub, scale, magnitude, normalize
//	• Errors: one shared taxonomy, matched with errors.Is
//	• Interop: YAML codec and a gonum bridge
//
// ✨ Why choose linalg?
//
//   - Readable – every algorithm is the textbook one, no pivoting tricks
//   - Predictable – results never alias inputs, failures are typed sentinels
//   - Small – no cgo, a handful of well-known dependencies
//
// Under the hood, everything is organized under these packages:
//
//	errs/    — shared sentinel errors and SingularError
//	matrix/  — Dense, kernels, determinant pipeline, codec, gonum bridge
//	vector/  — Vector and its operations
//	cmd/     — the linalg workload runner
//
// Quick example:
//
//	| 1 2 |
//	| 3 4 |  det = 1·4 − 2·3 = −2,  inverse = adj / det
//
// The determinant is O(N!), so keep inputs small or hand them to gonum
// through matrix.ToGonum.
//
//	go get github.com/katalvlaran/linalg
package linalg

// Package matrix implements dense real matrices and the arithmetic around them.
//
// What's inside:
//
//   - Dense: row-major storage built from a rectangular grid or a factory
//     (NewZeros, NewOnes, NewIdentity). Explicit in-place mutators
//     (Set, SetRow, SetColumn, SetData) validate before they write.
//   - Kernels: Add, Sub, Scale, Mul, Transpose, MatVec. Every kernel returns a
//     fresh *Dense and never mutates its operands.
//   - Determinant pipeline: SubMatrix, Determinant (recursive Laplace expansion
//     along the first row), Cofactor, Adjugate and Inverse (adjugate / det).
//   - Interop: YAML codec (gopkg.in/yaml.v3) and a gonum bridge (ToGonum,
//     FromGonum).
//
// Determinant cost:
//
//	Laplace expansion is O(N!) in time. It is exact in structure and easy to
//	audit, but it is not meant for N much beyond 10. Use gonum (see ToGonum)
//	when you need LU-based determinants for larger inputs.
//
// Errors:
//
//	All failures are sentinels from package errs re-exported here
//	(ErrDimensionMismatch, ErrNonSquare, ErrInvalidArgument, ErrOutOfRange,
//	ErrSingular) wrapped with an operation tag; match them with errors.Is.
//	Inverse returns a *SingularError carrying the determinant.
//
// Concurrency:
//
//	Dense carries no lock. Concurrent readers are fine; any mutation must be
//	serialized by the caller.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{4, 7}, {2, 6}})
//	inv, err := matrix.Inverse(a)
//	if errors.Is(err, matrix.ErrSingular) {
//		// handle
//	}
//	fmt.Print(inv)
package matrix

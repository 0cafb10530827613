// SPDX-License-Identifier: MIT

// Package matrix - determinant / cofactor / inverse pipeline.
//
// Purpose:
//   - SubMatrix: copy-based minor extraction (never a view).
//   - Determinant: recursive Laplace expansion along row 0 with closed forms
//     for 1×1 and 2×2.
//   - Cofactor / Adjugate / Inverse built on top of Determinant.
//
// Determinism & Policy:
//   - Fixed j-ascending expansion order; every minor is a fresh *Dense, so the
//     recursion never shares or mutates storage.
//   - No pivoting, no memoization: O(N!) time, O(N²) live memory per level.
//     Use ToGonum with gonum's LU for large N.
//   - Singularity is decided by an ABSOLUTE threshold on |det|
//     (DefaultSingularTolerance unless WithSingularTolerance is given).

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for the pipeline.
const (
	opSubMatrix   = "SubMatrix"
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// SubMatrix returns the (R−1)×(C−1) matrix obtained by deleting row
// excludeRow and column excludeCol; relative order of the rest is preserved.
//
// Implementation:
//   - Stage 1: ValidateNotNil; both selectors in range (ErrInvalidArgument);
//     R ≥ 2 and C ≥ 2, otherwise the result would be empty (ErrDimensionMismatch).
//   - Stage 2: materialize m as *Dense (no copy if it already is one).
//   - Stage 3: copy the surviving cells row by row into a new buffer.
//
// Returns:
//   - *Dense: independent copy; mutating it never touches m.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func SubMatrix(m Matrix, excludeRow, excludeCol int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if excludeRow < 0 || excludeRow >= rows || excludeCol < 0 || excludeCol >= cols {
		return nil, matrixErrorf(opSubMatrix,
			fmt.Errorf("exclude (%d,%d) outside %dx%d: %w", excludeRow, excludeCol, rows, cols, ErrInvalidArgument))
	}
	if rows < 2 || cols < 2 {
		return nil, matrixErrorf(opSubMatrix,
			fmt.Errorf("%dx%d has no (r-1)x(c-1) minor: %w", rows, cols, ErrDimensionMismatch))
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}

	return minor(d, excludeRow, excludeCol), nil
}

// minor is the unchecked core of SubMatrix. Callers guarantee r,c ≥ 2 and
// valid selectors.
func minor(d *Dense, excludeRow, excludeCol int) *Dense {
	rows, cols := d.r-1, d.c-1
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}

	var i, j, dst, base int
	for i = 0; i < d.r; i++ {
		if i == excludeRow {
			continue
		}
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if j == excludeCol {
				continue
			}
			out.data[dst] = d.data[base+j]
			dst++
		}
	}

	return out
}

// cofactorSign returns +1 for even k and −1 for odd k.
func cofactorSign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// Determinant computes det(m) by Laplace expansion along the first row.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil (ErrNonSquare for r != c).
//   - Stage 2: recurse via laplace:
//     1×1 → a; 2×2 → a·d − b·c;
//     N×N → Σ_j (−1)^j · a[0,j] · det(minor(0,j)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch).
//
// Complexity:
//   - Time O(N!), Space O(N²) along the recursion path.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return laplace(d), nil
}

// laplace is the recursive kernel; d must be square with n ≥ 1.
func laplace(d *Dense) float64 {
	switch d.r {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	det := ZeroSum
	for j := 0; j < d.c; j++ {
		det += cofactorSign(j) * d.data[j] * laplace(minor(d, 0, j))
	}

	return det
}

// Cofactor returns the matrix C with C[i,j] = (−1)^(i+j) · det(minor(i,j)).
//
// Behavior highlights:
//   - A 1×1 input yields [[1]]: the minor is empty and its determinant is 1.
//     This keeps Inverse([[a]]) = [[1/a]] well-defined.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(N² · (N−1)!), Space O(N²).
func Cofactor(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return cofactor(d), nil
}

// cofactor is the unchecked kernel behind Cofactor; d must be square.
func cofactor(d *Dense) *Dense {
	n := d.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	if n == 1 {
		out.data[0] = 1

		return out
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[i*n+j] = cofactorSign(i+j) * laplace(minor(d, i, j))
		}
	}

	return out
}

// Adjugate returns adj(m) = Cofactor(m)ᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Adjugate(m Matrix) (*Dense, error) {
	c, err := Cofactor(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil; resolve options.
//   - Stage 2: det := laplace(m).
//   - Stage 3: |det| < tol, det == 0 or NaN ⇒ *SingularError{Det, Tolerance}
//     (matches ErrSingular). An exact zero is singular even with tol = 0.
//   - Stage 4: Scale(Transpose(Cofactor(m)), 1/det).
//
// Inputs:
//   - m: square matrix.
//   - opts: WithSingularTolerance to override DefaultSingularTolerance.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (*SingularError).
//
// Complexity:
//   - Time O(N² · (N−1)!) dominated by the cofactor matrix.
//
// Notes:
//   - The threshold is absolute, so conditioning is not measured: a matrix with
//     huge entries may pass while being numerically ill-conditioned.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := laplace(d)
	if det == 0 || math.Abs(det) < o.singularTol || math.IsNaN(det) {
		return nil, matrixErrorf(opInverse, &SingularError{Det: det, Tolerance: o.singularTol})
	}

	adj, err := Transpose(cofactor(d))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return Scale(adj, 1/det)
}

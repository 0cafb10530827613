// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file re-exports the shared linalg taxonomy (package errs) under the
// matrix namespace so callers can write errors.Is(err, matrix.ErrSingular)
// without importing errs. All kernels MUST return these sentinels (wrapped
// with an operation tag) and tests MUST check them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "github.com/katalvlaran/linalg/errs"

// ERROR PRIORITY (documented, enforced in tests):
// nil -> index/range -> shape/dimension -> numeric (singular).

var (
	// ErrDimensionMismatch indicates incompatible shapes between operands or a
	// non-rectangular/empty construction grid.
	ErrDimensionMismatch = errs.ErrDimensionMismatch

	// ErrNonSquare signals that a square matrix was required. It also matches
	// ErrDimensionMismatch.
	ErrNonSquare = errs.ErrNonSquare

	// ErrInvalidArgument indicates an out-of-range row/column selector passed to
	// SetRow, SetColumn or SubMatrix, or a non-positive factory size.
	ErrInvalidArgument = errs.ErrInvalidArgument

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. It also matches ErrInvalidArgument.
	ErrInvalidDimensions = errs.ErrInvalidDimensions

	// ErrOutOfRange indicates that an element index is outside valid bounds.
	// At/Set return this, not panic.
	ErrOutOfRange = errs.ErrOutOfRange

	// ErrSingular is returned (as *SingularError) when |det| falls below the
	// singularity tolerance during inversion.
	ErrSingular = errs.ErrSingular

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errs.ErrNilMatrix
)

// SingularError carries the offending determinant; see errs.SingularError.
type SingularError = errs.SingularError

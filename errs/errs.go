// SPDX-License-Identifier: MIT
// Package errs: shared sentinel error set for the matrix and vector engines.
//
// Purpose:
//   - Give both engines one taxonomy so callers match failures with errors.Is
//     regardless of which package produced them.
//   - Carry diagnostics (the offending determinant) through a typed error that
//     still matches its sentinel.
//
// Every message is prefixed with "linalg: ..." for easy grepping. Engines wrap
// these sentinels with an operation tag ("Inverse: %w"); never compare by
// string, always by errors.Is / errors.As.
//
// ERROR PRIORITY (enforced in kernels):
// nil operand -> index/range -> shape/dimension -> numeric (singular, degenerate).
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible shapes: a non-rectangular or
	// empty grid, Add/Sub of different shapes, Mul where a.Cols != b.Rows,
	// a replacement row/column of the wrong length, vectors of unequal size.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It wraps ErrDimensionMismatch, so both sentinels match.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrInvalidArgument indicates a bad scalar parameter: an index outside
	// [0, n) passed to a bulk-replacement or extraction operation, or a
	// non-positive size passed to a factory.
	ErrInvalidArgument = errors.New("linalg: invalid argument")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	// It wraps ErrInvalidArgument.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)

	// ErrOutOfRange indicates that an element index is outside storage bounds.
	// Element accessors (At/Set) return it instead of panicking.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrSingular is matched by every *SingularError.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrDegenerate signals an operand that is numerically zero where a
	// non-zero one is required (normalizing a zero-magnitude vector).
	ErrDegenerate = errors.New("linalg: degenerate operand")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrNilVector indicates that a nil vector (receiver or argument) was used.
	ErrNilVector = errors.New("linalg: nil vector")
)

// SingularError reports an inversion refused because |Det| < Tolerance.
// errors.Is(err, ErrSingular) is true for any *SingularError.
type SingularError struct {
	Det       float64 // determinant that failed the check
	Tolerance float64 // absolute threshold in effect
}

// Error implements error.
func (e *SingularError) Error() string {
	return fmt.Sprintf("%s: |det|=%g below tolerance %g", ErrSingular.Error(), abs(e.Det), e.Tolerance)
}

// Is reports whether target is ErrSingular.
func (e *SingularError) Is(target error) bool { return target == ErrSingular }

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

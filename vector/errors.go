// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linalg/errs"

var (
	// ErrDimensionMismatch is returned when two vectors differ in size.
	ErrDimensionMismatch = errs.ErrDimensionMismatch

	// ErrDegenerate is returned by Normalize for a (near-)zero vector.
	ErrDegenerate = errs.ErrDegenerate

	// ErrOutOfRange is returned by At for an index outside [0, Len()).
	ErrOutOfRange = errs.ErrOutOfRange

	// ErrNilVector is returned by Dot, Add and Sub for a nil operand.
	ErrNilVector = errs.ErrNilVector
)

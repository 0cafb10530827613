// SPDX-License-Identifier: MIT

// Package matrix: bridge to gonum.org/v1/gonum/mat.
// Lets callers hand a Dense to gonum's LU/QR/SVD kernels and bring results
// back. Both directions copy; neither side aliases the other's storage.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix for a nil g; ErrInvalidDimensions for an empty g.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", fmt.Errorf("dims %dx%d: %w", r, c, err))
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

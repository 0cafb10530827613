// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
	"strings"
)

// DegenerateTolerance is the magnitude below which Normalize refuses to scale.
const DegenerateTolerance = 1e-10

// Operation tags for error wrapping.
const (
	opDot       = "Dot"
	opAdd       = "Add"
	opSub       = "Sub"
	opNormalize = "Normalize"
	opAt        = "At"
)

func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("Vector.%s: %w", tag, err)
}

// Vector is an immutable ordered sequence of float64.
type Vector struct {
	data []float64
}

var _ fmt.Stringer = (*Vector)(nil)

// New returns a Vector holding a copy of values. New() is the empty vector.
func New(values ...float64) *Vector {
	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{data: data}
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, len(v.data), ErrOutOfRange))
	}

	return v.data[i], nil
}

// Values returns a copy of the elements.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// sameSize returns ErrNilVector for a nil operand, then ErrDimensionMismatch
// unless len(v) == len(w).
func (v *Vector) sameSize(w *Vector) error {
	if v == nil || w == nil {
		return ErrNilVector
	}
	if len(v.data) != len(w.data) {
		return fmt.Errorf("sizes %d vs %d: %w", len(v.data), len(w.data), ErrDimensionMismatch)
	}

	return nil
}

// Dot returns Σ v[i]·w[i].
// Errors: ErrNilVector, ErrDimensionMismatch.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if err := v.sameSize(w); err != nil {
		return 0, vectorErrorf(opDot, err)
	}

	return v.dot(w), nil
}

func (v *Vector) dot(w *Vector) float64 {
	sum := 0.0
	for i, x := range v.data {
		sum += x * w.data[i]
	}

	return sum
}

// Add returns v + w element-wise.
// Errors: ErrNilVector, ErrDimensionMismatch.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if err := v.sameSize(w); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}

	return v.combine(w, +1), nil
}

// Sub returns v − w element-wise.
// Errors: ErrNilVector, ErrDimensionMismatch.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if err := v.sameSize(w); err != nil {
		return nil, vectorErrorf(opSub, err)
	}

	return v.combine(w, -1), nil
}

// combine computes v + sign*w; sizes are already checked.
func (v *Vector) combine(w *Vector, sign float64) *Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x + sign*w.data[i]
	}

	return &Vector{data: out}
}

// Scale returns alpha·v. Always succeeds.
func (v *Vector) Scale(alpha float64) *Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = alpha * x
	}

	return &Vector{data: out}
}

// Magnitude returns the Euclidean norm sqrt(v·v).
func (v *Vector) Magnitude() float64 { return math.Sqrt(v.dot(v)) }

// Normalize returns v / |v|.
// Errors: ErrDegenerate when |v| < DegenerateTolerance (including the empty vector).
func (v *Vector) Normalize() (*Vector, error) {
	mag := v.Magnitude()
	if mag < DegenerateTolerance {
		return nil, vectorErrorf(opNormalize, fmt.Errorf("magnitude %g: %w", mag, ErrDegenerate))
	}

	return v.Scale(1 / mag), nil
}

// Equal reports whether v and w have the same size and |v[i]−w[i]| ≤ tol for all i.
func (v *Vector) Equal(w *Vector, tol float64) bool {
	if w == nil || len(v.data) != len(w.data) {
		return false
	}
	for i, x := range v.data {
		if x != w.data[i] && !(math.Abs(x-w.data[i]) <= tol) {
			return false
		}
	}

	return true
}

// String renders "[1.0000, 2.0000, 3.0000]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.4f", x)
	}
	b.WriteString("]")

	return b.String()
}

// Package vector implements dense real vectors.
//
// A Vector owns an ordered []float64 of any length (the empty vector is legal).
// Every operation is pure: Dot, Add, Sub, Scale, Magnitude and Normalize
// return new values and never mutate their receiver or argument.
//
// Errors come from package errs: ErrDimensionMismatch for unequal sizes and
// ErrDegenerate when normalizing a vector whose magnitude is below
// DegenerateTolerance.
//
//	v := vector.New(3, 4)
//	u, _ := v.Normalize() // [0.6000, 0.8000]
package vector

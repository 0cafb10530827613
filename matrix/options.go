// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The singularity threshold is ABSOLUTE: |det| < tol ⇒ singular. Matrices
//     with very large entries can be ill-conditioned and still pass; matrices
//     with very small entries can be rejected although invertible. Scale the
//     input or pass WithSingularTolerance when that matters.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularTolerance is the absolute |det| threshold below which
	// Inverse reports ErrSingular.
	DefaultSingularTolerance = 1e-10

	// DefaultRTol and DefaultATol are the AllClose tolerances used by helpers
	// that compare computed matrices (e.g. identity checks after inversion).
	DefaultRTol = 1e-9
	DefaultATol = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	singularTol float64 // >= 0; DefaultSingularTolerance
}

// WithSingularTolerance sets the absolute determinant threshold used by Inverse.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Inputs:
//   - tol: non-negative finite tolerance. 0 means "only an exact zero is singular".
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithSingularTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// defaultOptions returns Options populated with package defaults.
func defaultOptions() Options {
	return Options{singularTol: DefaultSingularTolerance}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// SingularTolerance exposes the effective threshold (for diagnostics/tests).
func (o Options) SingularTolerance() float64 { return o.singularTol }

// NewOptions resolves opts into an Options value.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

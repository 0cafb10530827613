// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// eps is the absolute tolerance for float comparisons in tests.
const eps = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustFrom builds a *Dense from a grid or fails the test.
func MustFrom(tb testing.TB, grid [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(grid)
	if err != nil {
		tb.Fatalf("NewDenseFrom(%v): %v", grid, err)
	}

	return m
}

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// RandFilledDense returns an r×c *Dense with entries uniform in [-1, 1).
// Deterministic for a given seed.
func RandFilledDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m := MustDense(tb, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// Compare asserts m matches want element-wise within eps.
func Compare(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, want[i][j], got, eps, "at (%d,%d)", i, j)
		}
	}
}

// RequireAllClose asserts a ≈ b with the package default tolerances.
func RequireAllClose(t *testing.T, a, b matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, matrix.DefaultRTol, matrix.DefaultATol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

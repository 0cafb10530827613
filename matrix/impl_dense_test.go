// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFrom_Validation covers the construction contract.
func TestNewDenseFrom_Validation(t *testing.T) {
	cases := []struct {
		name string
		grid [][]float64
	}{
		{"nil grid", nil},
		{"empty grid", [][]float64{}},
		{"empty first row", [][]float64{{}}},
		{"ragged short", [][]float64{{1, 2}, {3}}},
		{"ragged long", [][]float64{{1}, {2, 3}}},
		{"ragged later row", [][]float64{{1, 2}, {3, 4}, {5, 6, 7}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDenseFrom(tc.grid)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			require.Nil(t, m)
		})
	}
}

// TestNewDenseFrom_ShapeAndCopy checks shape derivation and grid independence.
func TestNewDenseFrom_ShapeAndCopy(t *testing.T) {
	grid := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFrom(grid)
	require.NoError(t, err)

	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	// Mutating the source grid must not leak into the matrix.
	grid[0][0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetRow covers the error kinds and that only the target row changes.
func TestSetRow(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	err := m.SetRow(0, []float64{9})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = m.SetRow(3, []float64{9, 9})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	err = m.SetRow(-1, []float64{9, 9})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	// Failed calls left the receiver untouched.
	Compare(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, m)

	row := []float64{7, 8}
	require.NoError(t, m.SetRow(1, row))
	Compare(t, [][]float64{{1, 2}, {7, 8}, {5, 6}}, m)

	// The supplied slice is copied.
	row[0] = -1
	v, _ := m.At(1, 0)
	assert.Equal(t, 7.0, v)
}

// TestSetColumn mirrors TestSetRow for columns.
func TestSetColumn(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.ErrorIs(t, m.SetColumn(0, []float64{1, 2, 3}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetColumn(3, []float64{1, 2}), matrix.ErrInvalidArgument)

	require.NoError(t, m.SetColumn(2, []float64{-3, -6}))
	Compare(t, [][]float64{{1, 2, -3}, {4, 5, -6}}, m)
}

// TestSetData checks re-validation and shape reset.
func TestSetData(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	err := m.SetData([][]float64{{1, 2, 3}, {4}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	Compare(t, [][]float64{{1, 2}, {3, 4}}, m) // unchanged

	require.ErrorIs(t, m.SetData(nil), matrix.ErrDimensionMismatch)

	require.NoError(t, m.SetData([][]float64{{1, 2, 3}}))
	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, 3, m.Cols())
	Compare(t, [][]float64{{1, 2, 3}}, m)
}

// TestRowColumnCopies ensures getters return independent copies.
func TestRowColumnCopies(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	row[0] = 0

	col, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, col)

	grid := m.RawGrid()
	grid[0][0] = 42
	Compare(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, _ := m.At(0, 0)
	cloneVal, _ := clone.At(0, 0)
	require.Equal(t, 1.0, origVal)
	require.Equal(t, 3.0, cloneVal)
}

// TestDoEarlyStop verifies row-major order and early exit.
func TestDoEarlyStop(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	assert.Equal(t, []float64{1, 2, 3}, seen)
}

// TestStringOutput checks the fixed-width presentation.
func TestStringOutput(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, -2}, {3.14159, 40}})
	expected := "[   1.0000  -2.0000 ]\n[   3.1416  40.0000 ]\n"
	require.Equal(t, expected, m.String())

	negZero := MustFrom(t, [][]float64{{math.Copysign(0, -1)}})
	require.Equal(t, "[   0.0000 ]\n", negZero.String())
}

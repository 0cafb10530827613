package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddSub_Basic checks element-wise results on both kernel paths.
func TestAddSub_Basic(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{10, 20}, {30, 40}})

	for _, tc := range []struct {
		name string
		x, y matrix.Matrix
	}{
		{"dense", a, b},
		{"fallback", hide{a}, hide{b}},
		{"mixed", a, hide{b}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := matrix.Add(tc.x, tc.y)
			require.NoError(t, err)
			Compare(t, [][]float64{{11, 22}, {33, 44}}, sum)

			diff, err := matrix.Sub(tc.x, tc.y)
			require.NoError(t, err)
			Compare(t, [][]float64{{-9, -18}, {-27, -36}}, diff)
		})
	}
}

// TestAdd_ShapeMismatch: 2×2 + 3×1 must fail.
func TestAdd_ShapeMismatch(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{1}, {2}, {3}})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestKernels_Nil ensures nil operands surface ErrNilMatrix.
func TestKernels_Nil(t *testing.T) {
	a := MustFrom(t, [][]float64{{1}})
	var nilDense *matrix.Dense

	_, err := matrix.Add(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(nilDense, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddSub_RoundTrip: (A + B) − B == A.
func TestAddSub_RoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		a := RandFilledDense(t, 4, 3, seed)
		b := RandFilledDense(t, 4, 3, seed*100)
		sum, err := matrix.Add(a, b)
		require.NoError(t, err)
		back, err := matrix.Sub(sum, b)
		require.NoError(t, err)
		RequireAllClose(t, a, back)
	}
}

// TestAdd_DoesNotMutate ensures operands are left intact.
func TestAdd_DoesNotMutate(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}})
	b := MustFrom(t, [][]float64{{3, 4}})
	_, err := matrix.Add(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{1, 2}}, a)
	Compare(t, [][]float64{{3, 4}}, b)
}

// TestScale covers shape preservation and alpha=0.
func TestScale(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, -2, 3}})

	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	Compare(t, [][]float64{{2, -4, 6}}, s)

	z, err := matrix.ScaleBy(hide{a}, 0)
	require.NoError(t, err)
	Compare(t, [][]float64{{0, 0, 0}}, z)
}

// TestMul_Known checks the canonical 2×3 · 3×2 product on both paths.
func TestMul_Known(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFrom(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	Compare(t, want, p)

	p, err = matrix.Product(hide{a}, hide{b})
	require.NoError(t, err)
	Compare(t, want, p)
}

// TestMul_Mismatch requires a.Cols == b.Rows.
func TestMul_Mismatch(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}})
	b := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_Identity: A·I == A and I·A == A.
func TestMul_Identity(t *testing.T) {
	a := RandFilledDense(t, 3, 3, 7)
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	ai, err := matrix.Mul(a, I)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(a, ai))

	ia, err := matrix.Mul(I, a)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(a, ia))
}

// TestTranspose covers non-square shapes and the involution property.
func TestTranspose(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	Compare(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)

	att, err := matrix.T(hide{at})
	require.NoError(t, err)
	assert.True(t, matrix.Equal(a, att), "(Aᵀ)ᵀ must equal A exactly")
}

// TestMatVec checks y = A·x and the length guard.
func TestMatVec(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y)

	y, err = matrix.MatVecMul(hide{a}, []float64{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 6, 10}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAllClose covers tolerance semantics and argument validation.
func TestAllClose(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, math.Inf(1)}})
	b := MustFrom(t, [][]float64{{1 + 1e-12, math.Inf(1)}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	nan := MustFrom(t, [][]float64{{math.NaN(), 0}})
	ok, err = matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok, "NaN never compares close")

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.AllClose(a, MustFrom(t, [][]float64{{1}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	assert.False(t, matrix.Equal(a, nil))
}

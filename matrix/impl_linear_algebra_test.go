// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Mul, Transpose, MatVec and Equal.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/raykernel/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMul multiplies the 4×4 fixture on both paths.
func TestMul(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 8, 7, 6}, {5, 4, 3, 2}})
	b := MustRows(t, [][]float64{{-2, 1, 2, 3}, {3, 2, 1, -1}, {4, 3, 6, 5}, {1, 2, 7, 8}})
	want := [][]float64{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, got)

	got, err = matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, want, got)
}

// TestMulShapes covers rectangular operands and mismatches.
func TestMulShapes(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}})
	b := MustRows(t, [][]float64{{1}, {2}, {3}})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{14}}, got)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulPropagatesNaN keeps NaN visible even when the other factor is zero.
func TestMulPropagatesNaN(t *testing.T) {
	t.Parallel()

	zero := MustDense(t, 1, 1)
	nan, err := matrix.NewFromRows([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	got, err := matrix.Mul(zero, nan)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(MustAt(t, got, 0, 0)))
}

// TestTranspose swaps rows and columns; the identity is its own transpose.
func TestTranspose(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{0, 9, 3, 0}, {9, 8, 0, 8}, {1, 8, 5, 3}, {0, 0, 5, 8}})
	want := [][]float64{{0, 9, 1, 0}, {9, 8, 8, 0}, {3, 0, 5, 5}, {0, 8, 3, 8}}

	got, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, want, got)

	got, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, want, got)

	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	idT, err := matrix.Transpose(id)
	require.NoError(t, err)
	CompareExact(t, mustRowsOf(t, id), idT)

	rect, err := matrix.Transpose(MustRows(t, [][]float64{{1, 2, 3}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}, {2}, {3}}, rect)
}

// TestMatVec multiplies by a column vector on both paths.
func TestMatVec(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3, 4}, {2, 4, 4, 2}, {8, 6, 4, 1}, {0, 0, 0, 1}})
	x := []float64{1, 2, 3, 1}
	want := []float64{18, 24, 33, 1}

	y, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	require.Equal(t, want, y)

	y, err = matrix.MatVec(hide{a}, x)
	require.NoError(t, err)
	require.Equal(t, want, y)

	_, err = matrix.MatVec(a, x[:3])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestEqual compares within DefaultEpsilon or an explicit tolerance.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	near := MustRows(t, [][]float64{{1, 2}, {3, 4 + matrix.DefaultEpsilon/2}})
	far := MustRows(t, [][]float64{{2, 3}, {4, 5}})

	tests := []struct {
		name string
		a, b matrix.Matrix
		opts []matrix.Option
		want bool
	}{
		{"identical", a, a.Clone(), nil, true},
		{"within epsilon", a, near, nil, true},
		{"exact mode", a, near, []matrix.Option{matrix.WithEpsilon(0)}, false},
		{"different", a, far, nil, false},
		{"loose tolerance", a, far, []matrix.Option{matrix.WithEpsilon(1.5)}, true},
		{"shape mismatch", a, MustDense(t, 2, 3), nil, false},
		{"fallback path", hide{a}, near, nil, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Equal(tc.a, tc.b, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := matrix.Equal(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the 4×4 affine builders.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/raykernel/matrix"
	"github.com/katalvlaran/raykernel/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustApply returns m·t or fails the test.
func mustApply(t *testing.T, m matrix.Matrix, in tuple.Tuple) tuple.Tuple {
	t.Helper()
	out, err := matrix.MulTuple(m, in)
	require.NoError(t, err)

	return out
}

// mustInverse returns m⁻¹ or fails the test.
func mustInverse(t *testing.T, m matrix.Matrix) matrix.Matrix {
	t.Helper()
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)

	return inv
}

// TestTransformApply is a table of builder × tuple → expected tuple.
func TestTransformApply(t *testing.T) {
	t.Parallel()

	h := math.Sqrt2 / 2
	halfQuarter, fullQuarter := math.Pi/4, math.Pi/2

	tests := []struct {
		name string
		m    matrix.Matrix
		in   tuple.Tuple
		want tuple.Tuple
	}{
		{"translate point", matrix.Translation(5, -3, 2), tuple.Point(-3, 4, 5), tuple.Point(2, 1, 7)},
		{"translate inverse", mustInverse(t, matrix.Translation(5, -3, 2)), tuple.Point(-3, 4, 5), tuple.Point(-8, 7, 3)},
		{"translate vector is a no-op", matrix.Translation(5, -3, 2), tuple.Vector(-3, 4, 5), tuple.Vector(-3, 4, 5)},

		{"scale point", matrix.Scaling(2, 3, 4), tuple.Point(-4, 6, 8), tuple.Point(-8, 18, 32)},
		{"scale vector", matrix.Scaling(2, 3, 4), tuple.Vector(-4, 6, 8), tuple.Vector(-8, 18, 32)},
		{"scale inverse", mustInverse(t, matrix.Scaling(2, 3, 4)), tuple.Vector(-4, 6, 8), tuple.Vector(-2, 2, 2)},
		{"reflect x", matrix.Scaling(-1, 1, 1), tuple.Point(2, 3, 4), tuple.Point(-2, 3, 4)},

		{"rotate x half quarter", matrix.RotationX(halfQuarter), tuple.Point(0, 1, 0), tuple.Point(0, h, h)},
		{"rotate x full quarter", matrix.RotationX(fullQuarter), tuple.Point(0, 1, 0), tuple.Point(0, 0, 1)},
		{"rotate x inverse", mustInverse(t, matrix.RotationX(halfQuarter)), tuple.Point(0, 1, 0), tuple.Point(0, h, -h)},

		{"rotate y half quarter", matrix.RotationY(halfQuarter), tuple.Point(0, 0, 1), tuple.Point(h, 0, h)},
		{"rotate y full quarter", matrix.RotationY(fullQuarter), tuple.Point(0, 0, 1), tuple.Point(1, 0, 0)},
		{"rotate y x-axis to -z", matrix.RotationY(fullQuarter), tuple.Vector(1, 0, 0), tuple.Vector(0, 0, -1)},

		{"rotate z half quarter", matrix.RotationZ(halfQuarter), tuple.Point(0, 1, 0), tuple.Point(-h, h, 0)},
		{"rotate z full quarter", matrix.RotationZ(fullQuarter), tuple.Point(0, 1, 0), tuple.Point(-1, 0, 0)},

		{"shear x by y", matrix.Shearing(1, 0, 0, 0, 0, 0), tuple.Point(2, 3, 4), tuple.Point(5, 3, 4)},
		{"shear x by z", matrix.Shearing(0, 1, 0, 0, 0, 0), tuple.Point(2, 3, 4), tuple.Point(6, 3, 4)},
		{"shear y by x", matrix.Shearing(0, 0, 1, 0, 0, 0), tuple.Point(2, 3, 4), tuple.Point(2, 5, 4)},
		{"shear y by z", matrix.Shearing(0, 0, 0, 1, 0, 0), tuple.Point(2, 3, 4), tuple.Point(2, 7, 4)},
		{"shear z by x", matrix.Shearing(0, 0, 0, 0, 1, 0), tuple.Point(2, 3, 4), tuple.Point(2, 3, 6)},
		{"shear z by y", matrix.Shearing(0, 0, 0, 0, 0, 1), tuple.Point(2, 3, 4), tuple.Point(2, 3, 7)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := mustApply(t, tc.m, tc.in)
			assert.True(t, tuple.Equal(tc.want, got), "want %v, got %v", tc.want, got)
		})
	}
}

// TestTransformLayout pins the cells each builder overwrites.
func TestTransformLayout(t *testing.T) {
	t.Parallel()

	CompareExact(t, [][]float64{
		{1, 0, 0, 5},
		{0, 1, 0, -3},
		{0, 0, 1, 2},
		{0, 0, 0, 1},
	}, matrix.Translation(5, -3, 2))

	CompareExact(t, [][]float64{
		{1, 2, 3, 0},
		{4, 1, 5, 0},
		{6, 7, 1, 0},
		{0, 0, 0, 1},
	}, matrix.Shearing(2, 3, 4, 5, 6, 7))

	// RotationY keeps the negative sine in [2][0].
	ry := matrix.RotationY(math.Pi / 2)
	assert.InDelta(t, 1.0, MustAt(t, ry, 0, 2), 1e-15)
	assert.InDelta(t, -1.0, MustAt(t, ry, 2, 0), 1e-15)

	rx := matrix.RotationX(math.Pi / 2)
	assert.InDelta(t, -1.0, MustAt(t, rx, 1, 2), 1e-15)
	assert.InDelta(t, 1.0, MustAt(t, rx, 2, 1), 1e-15)
}

// TestRotationIsOrthonormal checks Rᵀ == R⁻¹ for each axis.
func TestRotationIsOrthonormal(t *testing.T) {
	t.Parallel()

	for _, r := range []*matrix.Dense{
		matrix.RotationX(0.7),
		matrix.RotationY(-1.3),
		matrix.RotationZ(2.1),
	} {
		rt, err := matrix.Transpose(r)
		require.NoError(t, err)
		CompareClose(t, mustInverse(t, r), rt)

		det, err := matrix.Determinant(r)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, det, 1e-12)
	}
}

// TestTransformChaining applies rotate, scale, translate one by one and chained.
func TestTransformChaining(t *testing.T) {
	t.Parallel()

	p := tuple.Point(1, 0, 1)
	a := matrix.RotationX(math.Pi / 2)
	b := matrix.Scaling(5, 5, 5)
	c := matrix.Translation(10, 5, 7)

	p2 := mustApply(t, a, p)
	assert.True(t, tuple.Equal(tuple.Point(1, -1, 0), p2), "%v", p2)
	p3 := mustApply(t, b, p2)
	assert.True(t, tuple.Equal(tuple.Point(5, -5, 0), p3), "%v", p3)
	p4 := mustApply(t, c, p3)
	assert.True(t, tuple.Equal(tuple.Point(15, 0, 7), p4), "%v", p4)

	cb, err := matrix.Mul(c, b)
	require.NoError(t, err)
	cba, err := matrix.Mul(cb, a)
	require.NoError(t, err)
	got := mustApply(t, cba, p)
	assert.True(t, tuple.Equal(tuple.Point(15, 0, 7), got), "%v", got)

	composed, err := matrix.Compose(a, b, c)
	require.NoError(t, err)
	CompareClose(t, cba, composed)

	id, err := matrix.Compose()
	require.NoError(t, err)
	CompareExact(t, mustRowsOf(t, matrix.Translation(0, 0, 0)), id)
}

// TestComposeErrors surfaces the failing transform index.
func TestComposeErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Compose(matrix.Scaling(1, 2, 3), MustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorContains(t, err, "transform 1")

	_, err = matrix.Compose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulTupleContract requires a non-nil 4×4 matrix.
func TestMulTupleContract(t *testing.T) {
	t.Parallel()

	_, err := matrix.MulTuple(nil, tuple.Point(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MulTuple(MustDense(t, 3, 3), tuple.Point(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Generic path gives the same answer as the fast path.
	m := matrix.Shearing(1, 2, 3, 4, 5, 6)
	p := tuple.Point(1, -1, 2)
	assert.Equal(t, mustApply(t, m, p), mustApply(t, hide{m}, p))
}

// TestIdentityMultiplication checks I·A = A and I·t = t.
func TestIdentityMultiplication(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{0, 1, 2, 4}, {1, 2, 4, 8}, {2, 4, 8, 16}, {4, 8, 16, 32}})
	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	got, err := matrix.Mul(a, id)
	require.NoError(t, err)
	CompareExact(t, mustRowsOf(t, a), got)

	p := tuple.New(1, 2, 3, 4)
	assert.Equal(t, p, mustApply(t, id, p))
}

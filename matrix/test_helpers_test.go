// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the cofactor engine.
//   • Bridge to gonum so determinants and inverses can be cross-checked.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/raykernel/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set fallback in kernels with a *Dense fast path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows builds a *Dense from a row literal or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact asserts strict equality between a matrix and a 2-D literal.
// Use only for integer-like or carefully crafted small matrices.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	got, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// CompareClose asserts a ≈ b entry-wise within the package epsilon.
func CompareClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.Equal(want, got)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%vgot\n%v", want, got)
}

// toGonum copies m into a gonum *mat.Dense for reference computations.
func toGonum(t testing.TB, m matrix.Matrix) *mat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	g := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g.Set(i, j, MustAt(t, m, i, j))
		}
	}

	return g
}

// RandDense returns an n×n matrix with entries in [-5,5) from a fixed seed.
func RandDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*10-5))
		}
	}

	return m
}

// RandInvertible returns RandDense shifted along the diagonal so the result is
// strictly diagonally dominant, hence invertible and well conditioned.
func RandInvertible(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandDense(t, n, seed)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, MustAt(t, m, i, i)+float64(5*n+5)))
	}

	return m
}

// SPDX-License-Identifier: MIT

// Package matrix - cofactor engine: submatrix, minor, cofactor, determinant,
// invertibility and the adjugate inverse.
//
// Purpose:
//   - Compute determinants by recursive cofactor expansion along row 0 with a
//     2×2 base case; every recursion level works on a freshly copied submatrix.
//   - Build inverses as adjugate/det without a separate transpose step.
//
// Error model:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrBadShape: caller bugs.
//   - ErrNotInvertible: determinant is exactly zero (recoverable).
//   - ErrNaNInf: a non-finite determinant or inverse entry is surfaced
//     instead of being coerced.
//
// Complexity quicksheet:
//   - Determinant: O(n!) time, O(n²) live space per recursion level.
//   - Inverse: n² cofactors, each O((n-1)!).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/raykernel/numeric"
)

// minExpandSize is the smallest order that has a submatrix.
const minExpandSize = 2

// Submatrix returns m with the given row and column removed, an (n-1)×(n-1) matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); require n ≥ 2 and in-range indices.
//   - Stage 2: copy the kept rows/cols through Dense.Induced.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadShape (n < 2), ErrOutOfRange.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Submatrix(m Matrix, row, col int) (*Dense, error) {
	d, err := squareDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	sub, err := d.submatrix(row, col)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	return sub, nil
}

// Minor returns the determinant of Submatrix(m, row, col).
//
// Errors:
//   - Same as Submatrix.
func Minor(m Matrix, row, col int) (float64, error) {
	d, err := squareDense(m)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	v, err := d.minor(row, col)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return v, nil
}

// Cofactor returns Minor(m, row, col), negated when row+col is odd.
//
// Errors:
//   - Same as Submatrix.
func Cofactor(m Matrix, row, col int) (float64, error) {
	d, err := squareDense(m)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	v, err := d.cofactor(row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return v, nil
}

// Determinant computes det(m) for a square matrix.
//
// Implementation:
//   - 1×1: the single entry.
//   - 2×2: a·d − b·c directly.
//   - n>2: Σ_col m[0][col]·Cofactor(m, 0, col), recursing through cofactor/minor.
//
// Behavior highlights:
//   - NaN/Inf entries propagate into the result; they are never coerced.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func Determinant(m Matrix) (float64, error) {
	d, err := squareDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := d.determinant()
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// IsInvertible reports whether det(m) != 0, compared exactly.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrNaNInf (with false) when the determinant is NaN or ±Inf: the answer
//     would be meaningless.
func IsInvertible(m Matrix) (bool, error) {
	det, err := Determinant(m)
	if err != nil {
		return false, matrixErrorf(opIsInvertible, err)
	}
	if !numeric.IsFinite(det) {
		return false, matrixErrorf(opIsInvertible, fmt.Errorf("det=%v: %w", det, ErrNaNInf))
	}

	return det != ZeroPivot, nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
//
// Implementation:
//   - Stage 1: validate, compute det; reject NaN/Inf and exact zero.
//   - Stage 2: for every (row, col) write Cofactor(m,row,col)/det into
//     result[col][row]; the swapped indices are the adjugate transpose.
//   - Stage 3: reject any non-finite entry (overflow for a tiny det).
//
// Behavior highlights:
//   - The result is a fresh *Dense carrying m's numeric policy.
//   - A 1×1 matrix [a] inverts to [1/a].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (contract).
//   - ErrNotInvertible when det == 0 exactly.
//   - ErrNaNInf when det or an entry of the result is not finite.
//
// Complexity:
//   - Time O(n²·(n-1)!), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	d, err := squareDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := d.determinant()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if !numeric.IsFinite(det) {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%v: %w", det, ErrNaNInf))
	}
	if det == ZeroPivot {
		return nil, matrixErrorf(opInverse, ErrNotInvertible)
	}

	n := d.r
	res, err := newDenseWithPolicy(n, n, d.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if n == 1 {
		if res.data[0] = 1 / det; !numeric.IsFinite(res.data[0]) {
			return nil, matrixErrorf(opInverse, denseErrorf(ctxSet, 0, 0, ErrNaNInf))
		}

		return res, nil
	}

	var row, col int
	var c, v float64
	for row = 0; row < n; row++ {
		for col = 0; col < n; col++ {
			if c, err = d.cofactor(row, col); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			v = c / det
			if !numeric.IsFinite(v) {
				return nil, matrixErrorf(opInverse, denseErrorf(ctxSet, col, row, ErrNaNInf))
			}
			res.data[col*n+row] = v
		}
	}

	return res, nil
}

// squareDense validates m (non-nil, square) and returns it as *Dense.
func squareDense(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return denseOf(m)
}

// keepIndices returns 0..n-1 without skip.
func keepIndices(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}

// submatrix drops one row and one column. m is assumed square.
func (m *Dense) submatrix(row, col int) (*Dense, error) {
	if m.r < minExpandSize {
		return nil, fmt.Errorf("%dx%d has no submatrix: %w", m.r, m.c, ErrBadShape)
	}
	if err := validateIndex(m, row, col); err != nil {
		return nil, err
	}

	return m.Induced(keepIndices(m.r, row), keepIndices(m.c, col))
}

// minor is det(submatrix(row, col)).
func (m *Dense) minor(row, col int) (float64, error) {
	sub, err := m.submatrix(row, col)
	if err != nil {
		return 0, err
	}

	return sub.determinant()
}

// cofactor applies the checkerboard sign to minor.
func (m *Dense) cofactor(row, col int) (float64, error) {
	v, err := m.minor(row, col)
	if err != nil {
		return 0, err
	}
	if (row+col)%2 == 1 {
		return -v, nil
	}

	return v, nil
}

// determinant expands along row 0; m is assumed square and non-empty.
func (m *Dense) determinant() (float64, error) {
	switch m.r {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}

	det := ZeroSum
	var c float64
	var err error
	for col := 0; col < m.c; col++ {
		if c, err = m.cofactor(0, col); err != nil {
			return 0, err
		}
		det += m.data[col] * c
	}

	return det, nil
}

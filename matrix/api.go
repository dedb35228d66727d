// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for constructing and comparing matrices.
//   - Each facade delegates to the canonical implementation; no logic duplication.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/raykernel/numeric"
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// NewFromRows copies a rectangular [][]float64 into a new *Dense.
//
// Errors:
//   - ErrInvalidDimensions for an empty input or empty first row.
//   - ErrBadShape for ragged rows.
//   - ErrNaNInf for a non-finite entry under the strict policy.
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	m, err := newDenseWithPolicy(len(rows), len(rows[0]), o.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), m.c, ErrBadShape)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("NewFromRows: %w", err)
			}
		}
	}

	return m, nil
}

// ToRows returns a [][]float64 copy of m, row by row.
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, d.r)
	for i := range out {
		out[i] = append([]float64(nil), d.data[i*d.c:(i+1)*d.c]...)
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and every pair of
// entries differs by less than the tolerance (DefaultEpsilon unless
// WithEpsilon is given). Exactly equal entries always match, so equal
// infinities compare equal; NaN never does.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//
// Complexity: O(r*c).
func Equal(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}
	o := gatherOptions(opts...)

	da, err := denseOf(a)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	equal := true
	da.Do(func(i, j int, v float64) bool {
		equal = numeric.ApproxEqualTol(v, db.data[i*db.c+j], o.eps)

		return equal
	})

	return equal, nil
}

// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and the fixed-size
// row-major arrays of golang.org/x/image/math/f64.
package matrix

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// ToMat4 copies a 4×4 matrix into an f64.Mat4 (row-major, m[4*r+c]).
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when m is not 4×4.
func ToMat4(m Matrix) (f64.Mat4, error) {
	var out f64.Mat4
	if err := ValidateNotNil(m); err != nil {
		return out, err
	}
	if m.Rows() != TransformSize || m.Cols() != TransformSize {
		return out, fmt.Errorf("ToMat4: %dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	d, err := denseOf(m)
	if err != nil {
		return out, fmt.Errorf("ToMat4: %w", err)
	}
	copy(out[:], d.data)

	return out, nil
}

// FromMat4 returns a new 4×4 *Dense holding the entries of a.
// The default numeric policy applies to later Set calls; entries of a are
// copied as given.
func FromMat4(a f64.Mat4) *Dense {
	m := identity4()
	copy(m.data, a[:])

	return m
}

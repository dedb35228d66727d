// SPDX-License-Identifier: MIT

// Package matrix - 4×4 affine transform builders.
//
// Purpose:
//   - Build translation, scaling, axis rotations and shearing as the 4×4
//     identity with specific cells overwritten (no multiplied chains).
//   - Apply a transform to a homogeneous tuple with plain matrix–vector
//     multiplication: translation moves points (w=1) and leaves vectors
//     (w=0) untouched because of w, not because of a special case.
//
// Notes:
//   - Angles are in radians.
//   - Builder arguments are stored as given; a NaN argument shows up later
//     as a NaN determinant or tuple component, never silently as zero.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/raykernel/tuple"
)

// TransformSize is the order of every affine transform matrix.
const TransformSize = 4

// identity4 returns a fresh 4×4 identity with the default numeric policy.
func identity4() *Dense {
	m := &Dense{
		r:              TransformSize,
		c:              TransformSize,
		data:           make([]float64, TransformSize*TransformSize),
		validateNaNInf: DefaultValidateNaNInf,
	}
	for i := 0; i < TransformSize; i++ {
		m.data[i*TransformSize+i] = 1
	}

	return m
}

// put writes v at (row, col) of a 4×4 builder result.
func (m *Dense) put(row, col int, v float64) {
	m.data[row*m.c+col] = v
}

// Translation returns the identity with [0][3]=x, [1][3]=y, [2][3]=z.
func Translation(x, y, z float64) *Dense {
	m := identity4()
	m.put(0, 3, x)
	m.put(1, 3, y)
	m.put(2, 3, z)

	return m
}

// Scaling returns the identity with diagonal (x, y, z, 1).
// A negative factor reflects across the corresponding axis.
func Scaling(x, y, z float64) *Dense {
	m := identity4()
	m.put(0, 0, x)
	m.put(1, 1, y)
	m.put(2, 2, z)

	return m
}

// RotationX rotates around the x axis by theta radians.
//
//	[1 0    0     0]
//	[0 cosθ -sinθ 0]
//	[0 sinθ cosθ  0]
//	[0 0    0     1]
func RotationX(theta float64) *Dense {
	sin, cos := math.Sincos(theta)
	m := identity4()
	m.put(1, 1, cos)
	m.put(1, 2, -sin)
	m.put(2, 1, sin)
	m.put(2, 2, cos)

	return m
}

// RotationY rotates around the y axis by theta radians.
// The negative sine sits in the lower-left cell, unlike RotationX/RotationZ;
// that placement keeps the rotation right-handed.
//
//	[cosθ  0 sinθ 0]
//	[0     1 0    0]
//	[-sinθ 0 cosθ 0]
//	[0     0 0    1]
func RotationY(theta float64) *Dense {
	sin, cos := math.Sincos(theta)
	m := identity4()
	m.put(0, 0, cos)
	m.put(0, 2, sin)
	m.put(2, 0, -sin)
	m.put(2, 2, cos)

	return m
}

// RotationZ rotates around the z axis by theta radians.
//
//	[cosθ -sinθ 0 0]
//	[sinθ cosθ  0 0]
//	[0    0     1 0]
//	[0    0     0 1]
func RotationZ(theta float64) *Dense {
	sin, cos := math.Sincos(theta)
	m := identity4()
	m.put(0, 0, cos)
	m.put(0, 1, -sin)
	m.put(1, 0, sin)
	m.put(1, 1, cos)

	return m
}

// Shearing moves each coordinate in proportion to the other two.
// xy is "x moved in proportion to y", and so on:
//
//	[1  xy xz 0]
//	[yx 1  yz 0]
//	[zx zy 1  0]
//	[0  0  0  1]
func Shearing(xy, xz, yx, yz, zx, zy float64) *Dense {
	m := identity4()
	m.put(0, 1, xy)
	m.put(0, 2, xz)
	m.put(1, 0, yx)
	m.put(1, 2, yz)
	m.put(2, 0, zx)
	m.put(2, 1, zy)

	return m
}

// MulTuple returns m·t for a 4×4 m and a homogeneous tuple t.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when m is not 4×4.
func MulTuple(m Matrix, t tuple.Tuple) (tuple.Tuple, error) {
	if err := ValidateNotNil(m); err != nil {
		return tuple.Tuple{}, matrixErrorf(opMulTuple, err)
	}
	if m.Rows() != TransformSize || m.Cols() != TransformSize {
		return tuple.Tuple{}, matrixErrorf(opMulTuple,
			fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch))
	}
	y, err := MatVec(m, []float64{t.X, t.Y, t.Z, t.W})
	if err != nil {
		return tuple.Tuple{}, matrixErrorf(opMulTuple, err)
	}

	return tuple.New(y[0], y[1], y[2], y[3]), nil
}

// Compose chains transforms in application order: Compose(A, B, C) returns
// C·B·A, so A is applied first. With no arguments it returns the 4×4 identity.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch from Mul.
func Compose(transforms ...Matrix) (Matrix, error) {
	var acc Matrix = identity4()
	var err error
	for i, t := range transforms {
		if acc, err = Mul(t, acc); err != nil {
			return nil, matrixErrorf(opCompose, fmt.Errorf("transform %d: %w", i, err))
		}
	}

	return acc, nil
}

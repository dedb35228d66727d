// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag and
// tests match them via errors.Is. No kernel panics on caller input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it is easy to grep in logs.
// Kernels wrap at the detection site with matrixErrorf/denseErrorf; the
// sentinel identity survives the wrapping.
//
// Two classes live here:
//   - contract violations (bad index, bad shape, nil, non-square): a caller
//     bug, never retried;
//   - ErrNotInvertible: the one domain-recoverable condition.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when an operation needs a larger matrix than it got
	// (Submatrix of a 1×1) or when row slices are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (Set under the default policy, a non-finite determinant in Inverse).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotInvertible is returned by Inverse when the determinant is exactly zero.
	// Callers are expected to handle it (or test IsInvertible first).
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")
)

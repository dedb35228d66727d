// SPDX-License-Identifier: MIT

// Package numeric is the single source of truth for floating-point tolerance
// used across raykernel.
//
// Purpose:
//   - Define Epsilon once; tuple, color and matrix equality all compare through it.
//   - Provide tiny, allocation-free helpers (ApproxEqual, IsFinite).
//
// Policy:
//   - Two values are equal when |a-b| < Epsilon (strict).
//   - NaN is never equal to anything, including NaN.
package numeric

import "math"

// Epsilon is the absolute tolerance for tuple, color and matrix equality.
// 1e-4 keeps five significant digits of the usual textbook fixtures.
const Epsilon = 1e-4

// ApproxEqual reports whether |a-b| < Epsilon.
// Complexity: O(1).
func ApproxEqual(a, b float64) bool {
	return ApproxEqualTol(a, b, Epsilon)
}

// ApproxEqualTol reports whether |a-b| < tol.
// Exactly equal values (including equal infinities) always compare equal.
func ApproxEqualTol(a, b, tol float64) bool {
	if a == b {
		return true // covers +Inf == +Inf without producing NaN below
	}

	return math.Abs(a-b) < tol
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

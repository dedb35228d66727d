// Package matrix is the square-matrix engine behind the ray-tracing kernel.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and a NaN/Inf numeric policy.
//   - Submatrix, Minor, Cofactor and a recursive cofactor-expansion
//     Determinant with a 2×2 base case.
//   - IsInvertible and an adjugate-based Inverse that reports
//     ErrNotInvertible for a zero determinant.
//   - 4×4 affine builders: Translation, Scaling, RotationX/Y/Z and Shearing,
//     plus MulTuple to apply them to homogeneous points and vectors.
//
// Cofactor expansion is O(n!) and is meant for the small matrices a renderer
// uses (up to 4×4, occasionally a little larger in tests).
//
// See the examples in this package for usage patterns.
package matrix

// Package raykernel is the numeric core of a small ray tracer: homogeneous
// tuples, RGB colors, a pixel canvas with plain-PPM export, and the dense
// matrix algebra behind 4×4 transforms.
//
// Everything is organized under these subpackages:
//
//	numeric/      shared epsilon and float comparisons
//	tuple/        points and vectors (w = 1 / w = 0), dot, cross, normalize
//	color/        RGB triples, Hadamard blend, SVG color keywords
//	canvas/       width×height pixel grid, PPM (P3) text, PNG/BMP/TIFF export
//	matrix/       Dense matrices: multiply, transpose, determinant by
//	              cofactor expansion, inverse, translation/scaling/rotation/
//	              shearing builders and Compose
//	projectile/   discrete projectile simulation with YAML scenes
//
// Two commands exercise the stack end to end:
//
//	cmd/projectile   plot a projectile's flight
//	cmd/clock        plot twelve clock-hour marks via RotationY
//
// Quick example:
//
//	p := tuple.Point(1, 0, 1)
//	m, _ := matrix.Compose(
//		matrix.RotationX(math.Pi/2),
//		matrix.Scaling(5, 5, 5),
//		matrix.Translation(10, 5, 7),
//	)
//	q, _ := matrix.MulTuple(m, p) // (15, 0, 7, 1)
//
//	go get github.com/katalvlaran/raykernel
package raykernel

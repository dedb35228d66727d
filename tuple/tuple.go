// SPDX-License-Identifier: MIT

package tuple

import (
	"fmt"
	"math"

	"github.com/katalvlaran/raykernel/numeric"
	"golang.org/x/image/math/f64"
)

// Homogeneous w markers.
const (
	wPoint  = 1.0
	wVector = 0.0
)

// Tuple is a homogeneous coordinate (X, Y, Z, W).
// W == 1 marks a point, W == 0 marks a vector; any other W is a plain 4-tuple.
type Tuple struct {
	X, Y, Z, W float64
}

// Zero is the all-zero tuple (a zero vector).
var Zero = Tuple{}

// New returns the tuple (x, y, z, w).
func New(x, y, z, w float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: w} }

// Point returns (x, y, z, 1).
func Point(x, y, z float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: wPoint} }

// Vector returns (x, y, z, 0).
func Vector(x, y, z float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: wVector} }

// FromVec4 converts an x/image row vector into a Tuple.
func FromVec4(v f64.Vec4) Tuple { return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]} }

// Vec4 returns the components as an x/image f64.Vec4 (x, y, z, w).
func (t Tuple) Vec4() f64.Vec4 { return f64.Vec4{t.X, t.Y, t.Z, t.W} }

// IsPoint reports whether W is exactly 1.
func (t Tuple) IsPoint() bool { return t.W == wPoint }

// IsVector reports whether W is exactly 0.
func (t Tuple) IsVector() bool { return t.W == wVector }

// Add returns t + o component-wise.
// point + vector = point, vector + vector = vector; point + point yields W=2.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{X: t.X + o.X, Y: t.Y + o.Y, Z: t.Z + o.Z, W: t.W + o.W}
}

// Sub returns t - o component-wise.
// point - point = vector, point - vector = point.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{X: t.X - o.X, Y: t.Y - o.Y, Z: t.Z - o.Z, W: t.W - o.W}
}

// Neg returns -t (all four components negated).
func (t Tuple) Neg() Tuple { return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W} }

// Scale returns s*t.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{X: t.X * s, Y: t.Y * s, Z: t.Z * s, W: t.W * s}
}

// Div returns t/s. Division by zero follows IEEE-754 (±Inf or NaN).
func (t Tuple) Div(s float64) Tuple {
	return Tuple{X: t.X / s, Y: t.Y / s, Z: t.Z / s, W: t.W / s}
}

// Magnitude returns the Euclidean length of the (X, Y, Z) part.
// W does not contribute, so a point and a vector with the same XYZ share it.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns t scaled to unit magnitude.
//
// Errors:
//   - ErrZeroMagnitude when Magnitude() == 0; dividing would only produce NaN.
//
// Complexity: O(1).
func (t Tuple) Normalize() (Tuple, error) {
	m := t.Magnitude()
	if m == 0 {
		return Tuple{}, fmt.Errorf("Normalize(%v): %w", t, ErrZeroMagnitude)
	}

	return t.Div(m), nil
}

// Dot returns the dot product over all four components.
func Dot(a, b Tuple) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the cross product a × b of the XYZ parts as a vector.
// Order matters: Cross(b, a) == Cross(a, b).Neg().
func Cross(a, b Tuple) Tuple {
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Equal reports whether every component of a and b differs by less than
// numeric.Epsilon.
func Equal(a, b Tuple) bool {
	return numeric.ApproxEqual(a.X, b.X) &&
		numeric.ApproxEqual(a.Y, b.Y) &&
		numeric.ApproxEqual(a.Z, b.Z) &&
		numeric.ApproxEqual(a.W, b.W)
}

// String implements fmt.Stringer.
func (t Tuple) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}

// Package tuple implements homogeneous 4-component tuples: points (w=1) and
// vectors (w=0) in 3-D space.
//
// A Tuple is a plain value type. Every operation returns a new Tuple and never
// mutates its receiver, so tuples can be copied and shared freely.
//
// Equality is tolerance-based (see numeric.Epsilon); use Equal rather than ==
// when comparing computed values.
//
//	p := tuple.Point(-3, 4, 5)
//	v := tuple.Vector(1, 0, 0)
//	q := p.Add(v) // still a point
package tuple

// SPDX-License-Identifier: MIT

package color

import (
	"fmt"
	stdcolor "image/color"
	"strings"

	"github.com/katalvlaran/raykernel/numeric"
	"golang.org/x/image/colornames"
)

// maxChannel16 is the full-scale value of image/color's 16-bit channels.
const maxChannel16 = 0xffff

// Color is an RGB triple of float64 channels; 0 is off and 1 is full intensity.
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// New returns the color (r, g, b).
func New(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

// Add returns c + o per channel.
func (c Color) Add(o Color) Color { return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B} }

// Sub returns c - o per channel.
func (c Color) Sub(o Color) Color { return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B} }

// Scale returns s*c.
func (c Color) Scale(s float64) Color { return Color{R: c.R * s, G: c.G * s, B: c.B * s} }

// Hadamard returns the per-channel product a ⊙ b (color blending).
func Hadamard(a, b Color) Color {
	return Color{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B}
}

// Equal reports whether each channel of a and b differs by less than
// numeric.Epsilon.
func Equal(a, b Color) bool {
	return numeric.ApproxEqual(a.R, b.R) &&
		numeric.ApproxEqual(a.G, b.G) &&
		numeric.ApproxEqual(a.B, b.B)
}

// FromRGBA converts any image/color value into a Color in [0,1].
// Alpha is dropped; channels are taken alpha-premultiplied as RGBA() returns
// them, so translucent inputs come out darker.
func FromRGBA(c stdcolor.Color) Color {
	r, g, b, _ := c.RGBA()

	return Color{
		R: float64(r) / maxChannel16,
		G: float64(g) / maxChannel16,
		B: float64(b) / maxChannel16,
	}
}

// Named looks up an SVG 1.1 color keyword ("red", "cornflowerblue", ...).
// Lookup is case-insensitive and ignores surrounding spaces.
//
// Errors:
//   - ErrUnknownColor when the keyword is not in the palette.
func Named(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	rgba, ok := colornames.Map[key]
	if !ok {
		return Color{}, fmt.Errorf("Named(%q): %w", name, ErrUnknownColor)
	}

	return FromRGBA(rgba), nil
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

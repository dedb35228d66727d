// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"

	"github.com/katalvlaran/raykernel/color"
)

// Operation tags for error wrapping.
const (
	opWritePixel = "WritePixel"
	opPixelAt    = "PixelAt"
	opEncode     = "EncodePPM"
	opImage      = "Image"
)

// Canvas is a width×height grid of colors stored row-major
// (offset = y*width + x). Channels are unbounded until serialization.
// A Canvas is not safe for concurrent writers.
type Canvas struct {
	width, height int
	pixels        []color.Color
}

// New allocates a width×height canvas with every pixel black.
//
// Errors:
//   - ErrInvalidDimensions when width or height is ≤ 0.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrInvalidDimensions)
	}

	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]color.Color, width*height),
	}, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// offset bounds-checks (x, y) and returns the flat index.
func (c *Canvas) offset(x, y int) (int, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, false
	}

	return y*c.width + x, true
}

// WritePixel overwrites the pixel at (x, y).
//
// Errors:
//   - ErrOutOfBounds unless 0 ≤ x < Width() and 0 ≤ y < Height().
func (c *Canvas) WritePixel(x, y int, col color.Color) error {
	off, ok := c.offset(x, y)
	if !ok {
		return canvasErrorf(opWritePixel, x, y, ErrOutOfBounds)
	}
	c.pixels[off] = col

	return nil
}

// PixelAt returns the pixel at (x, y).
//
// Errors:
//   - ErrOutOfBounds unless 0 ≤ x < Width() and 0 ≤ y < Height().
func (c *Canvas) PixelAt(x, y int) (color.Color, error) {
	off, ok := c.offset(x, y)
	if !ok {
		return color.Color{}, canvasErrorf(opPixelAt, x, y, ErrOutOfBounds)
	}

	return c.pixels[off], nil
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col color.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "canvas: ".
var (
	// ErrInvalidDimensions is returned by New for a non-positive width or height.
	ErrInvalidDimensions = errors.New("canvas: dimensions must be > 0")

	// ErrOutOfBounds is returned when a pixel coordinate is outside the canvas.
	ErrOutOfBounds = errors.New("canvas: pixel out of bounds")

	// ErrNaNChannel is returned by the encoders when a pixel has a NaN channel.
	ErrNaNChannel = errors.New("canvas: NaN color channel")

	// ErrNilCanvas is returned when a nil *Canvas reaches an encoder.
	ErrNilCanvas = errors.New("canvas: nil canvas")

	// ErrUnknownFormat is returned by ParseFormat and WriteImage.
	ErrUnknownFormat = errors.New("canvas: unknown image format")
)

// canvasErrorf wraps err with an operation tag and pixel coordinates,
// e.g. "WritePixel(10,3): canvas: pixel out of bounds".
func canvasErrorf(op string, x, y int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, x, y, err)
}

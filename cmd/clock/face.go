// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/raykernel/canvas"
	"github.com/katalvlaran/raykernel/color"
	"github.com/katalvlaran/raykernel/matrix"
	"github.com/katalvlaran/raykernel/tuple"
)

const hours = 12

// errRadius rejects faces that cannot fit their marks.
var errRadius = errors.New("clock: radius must be > 0")

// hourMarks returns the canvas position of each hour, twelve o'clock first,
// for a face of the given radius centred on a size×size canvas.
// The face lies in the XZ plane: every mark is the point (0,0,1) rotated by
// h·π/6 about Y, scaled to the radius (Z negated so twelve is at the top)
// and moved to the centre. X is the canvas column and Z the canvas row.
func hourMarks(size int, radius float64) ([]tuple.Tuple, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("hourMarks(%d,%g): %w", size, radius, errRadius)
	}
	center := float64(size) / 2
	place, err := matrix.Compose(
		matrix.Scaling(radius, 1, -radius),
		matrix.Translation(center, 0, center),
	)
	if err != nil {
		return nil, err
	}

	twelve := tuple.Point(0, 0, 1)
	marks := make([]tuple.Tuple, 0, hours)
	for h := 0; h < hours; h++ {
		m, err := matrix.Compose(matrix.RotationY(float64(h)*math.Pi/(hours/2)), place)
		if err != nil {
			return nil, err
		}
		p, err := matrix.MulTuple(m, twelve)
		if err != nil {
			return nil, err
		}
		marks = append(marks, p)
	}

	return marks, nil
}

// drawFace renders each hour mark as a (2·dot+1)² square. Pixels falling
// outside the canvas are clipped.
func drawFace(size int, radius float64, dot int, ink color.Color) (*canvas.Canvas, error) {
	c, err := canvas.New(size, size)
	if err != nil {
		return nil, err
	}
	marks, err := hourMarks(size, radius)
	if err != nil {
		return nil, err
	}

	for _, p := range marks {
		cx, cy := int(math.Round(p.X)), int(math.Round(p.Z))
		for dy := -dot; dy <= dot; dy++ {
			for dx := -dot; dx <= dot; dx++ {
				if err = c.WritePixel(cx+dx, cy+dy, ink); err != nil && !errors.Is(err, canvas.ErrOutOfBounds) {
					return nil, err
				}
			}
		}
	}

	return c, nil
}

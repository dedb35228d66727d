// SPDX-License-Identifier: MIT

// Plain PPM (P3) encoding.
//
// Layout:
//
//	P3
//	<width> <height>
//	<max>
//	r g b r g b ...   one logical line per canvas row
//
// Wrap rule: values are joined by single spaces; before a value is appended,
// if the line would grow past the wrap column the line is ended and the value
// opens a fresh line with no leading space. Every canvas row ends with '\n',
// so the next row always starts a fresh line.

package canvas

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/raykernel/color"
)

// ppmMagic is the plain-PPM format tag.
const ppmMagic = "P3"

// ByteClamp maps a channel onto 0..DefaultMaxValue: v*255 clamped to
// [0, 255] and rounded half away from zero, so 0.5 becomes 128.
// +Inf maps to 255 and -Inf to 0. NaN has no meaningful byte and maps to 0;
// the encoders reject NaN before they get here.
func ByteClamp(v float64) int {
	return scaleClamp(v, DefaultMaxValue)
}

// scaleClamp is ByteClamp for an arbitrary channel maximum.
func scaleClamp(v float64, maxValue int) int {
	if math.IsNaN(v) {
		return 0
	}
	top := float64(maxValue)
	s := v * top
	switch {
	case s < 0:
		s = 0
	case s > top:
		s = top
	}

	return int(math.Round(s))
}

// EncodePPM returns the P3 text of c.
//
// Errors:
//   - ErrNilCanvas; ErrNaNChannel (with the pixel coordinates).
//
// Complexity: O(width*height) time and output size.
func EncodePPM(c *Canvas, opts ...Option) (string, error) {
	var b strings.Builder
	if err := WritePPM(&b, c, opts...); err != nil {
		return "", err
	}

	return b.String(), nil
}

// WritePPM streams the P3 text of c to w through a buffered writer.
//
// Implementation:
//   - Stage 1: write the three header lines.
//   - Stage 2: for each row top-to-bottom, emit r, g, b of each pixel
//     left-to-right through a lineWrapper reset per row.
//
// Errors:
//   - ErrNilCanvas; ErrNaNChannel; any error from w.
func WritePPM(w io.Writer, c *Canvas, opts ...Option) error {
	if c == nil {
		return fmt.Errorf("%s: %w", opEncode, ErrNilCanvas)
	}
	o := NewOptions(opts...)
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", ppmMagic, c.width, c.height, o.maxValue); err != nil {
		return fmt.Errorf("%s: header: %w", opEncode, err)
	}

	lw := lineWrapper{w: bw, width: o.lineWidth}
	var x, y int
	var px color.Color
	for y = 0; y < c.height; y++ {
		lw.reset()
		for x = 0; x < c.width; x++ {
			px = c.pixels[y*c.width+x]
			if math.IsNaN(px.R) || math.IsNaN(px.G) || math.IsNaN(px.B) {
				return canvasErrorf(opEncode, x, y, ErrNaNChannel)
			}
			lw.value(scaleClamp(px.R, o.maxValue))
			lw.value(scaleClamp(px.G, o.maxValue))
			lw.value(scaleClamp(px.B, o.maxValue))
		}
		lw.endRow()
	}
	if lw.err != nil {
		return fmt.Errorf("%s: %w", opEncode, lw.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", opEncode, err)
	}

	return nil
}

// lineWrapper tracks the length of the current output line for one row.
// The first write error is kept and later writes become no-ops.
type lineWrapper struct {
	w       *bufio.Writer
	width   int
	lineLen int
	scratch []byte
	err     error
}

// reset starts a new row on a fresh line.
func (l *lineWrapper) reset() { l.lineLen = 0 }

// value appends one channel value, wrapping first if it would not fit.
func (l *lineWrapper) value(v int) {
	if l.err != nil {
		return
	}
	l.scratch = strconv.AppendInt(l.scratch[:0], int64(v), 10)
	n := len(l.scratch)
	switch {
	case l.lineLen == 0:
		// first value on the line
	case l.lineLen+1+n > l.width:
		l.err = l.w.WriteByte('\n')
		l.lineLen = 0
	default:
		l.err = l.w.WriteByte(' ')
		l.lineLen++
	}
	if l.err != nil {
		return
	}
	_, l.err = l.w.Write(l.scratch)
	l.lineLen += n
}

// endRow terminates the row's last line.
func (l *lineWrapper) endRow() {
	if l.err != nil {
		return
	}
	l.err = l.w.WriteByte('\n')
	l.lineLen = 0
}

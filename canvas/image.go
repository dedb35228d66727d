// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format names an output image encoding.
type Format string

// Supported formats.
const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported format in a stable order.
var Formats = []Format{FormatPPM, FormatPNG, FormatBMP, FormatTIFF}

// ParseFormat resolves a case-insensitive format name ("tif" is accepted for TIFF).
//
// Errors:
//   - ErrUnknownFormat.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatPPM, FormatPNG, FormatBMP, FormatTIFF:
		return f, nil
	case "tif":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
	}
}

// Image converts c into an opaque *image.RGBA using ByteClamp on each channel.
// Canvas (0,0) is the image's top-left pixel, as in the PPM output.
//
// Errors:
//   - ErrNilCanvas; ErrNaNChannel (with the pixel coordinates).
func Image(c *Canvas) (*image.RGBA, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", opImage, ErrNilCanvas)
	}
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	var x, y int
	for y = 0; y < c.height; y++ {
		for x = 0; x < c.width; x++ {
			px := c.pixels[y*c.width+x]
			if math.IsNaN(px.R) || math.IsNaN(px.G) || math.IsNaN(px.B) {
				return nil, canvasErrorf(opImage, x, y, ErrNaNChannel)
			}
			img.SetRGBA(x, y, stdcolor.RGBA{
				R: uint8(ByteClamp(px.R)),
				G: uint8(ByteClamp(px.G)),
				B: uint8(ByteClamp(px.B)),
				A: math.MaxUint8,
			})
		}
	}

	return img, nil
}

// WriteImage encodes c to w in the given format. PPM goes through WritePPM
// with the default options; the others go through Image and the matching
// encoder (image/png, x/image/bmp, x/image/tiff with Deflate compression).
//
// Errors:
//   - ErrUnknownFormat; anything Image, WritePPM or the encoder returns.
func WriteImage(w io.Writer, c *Canvas, f Format) error {
	if f == FormatPPM {
		return WritePPM(w, c)
	}

	var encode func(io.Writer, image.Image) error
	switch f {
	case FormatPNG:
		encode = png.Encode
	case FormatBMP:
		encode = bmp.Encode
	case FormatTIFF:
		encode = func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return fmt.Errorf("WriteImage(%q): %w", f, ErrUnknownFormat)
	}

	img, err := Image(c)
	if err != nil {
		return err
	}
	if err = encode(w, img); err != nil {
		return fmt.Errorf("WriteImage(%s): %w", f, err)
	}

	return nil
}

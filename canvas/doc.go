// Package canvas holds the pixel grid a renderer draws into and turns it
// into a portable text image.
//
// The canvas package provides:
//
//   - Canvas, a fixed width×height grid of color.Color cells, black at birth.
//   - ByteClamp, which maps an unbounded float channel onto 0..255.
//   - EncodePPM / WritePPM, a deterministic plain PPM (P3) encoder that wraps
//     lines before they exceed 70 characters.
//   - Image and WriteImage, which hand the same pixels to Go's image
//     ecosystem (PNG, BMP, TIFF).
//
// Out-of-range coordinates are reported as ErrOutOfBounds; NaN channels are
// refused with ErrNaNChannel instead of being coerced to black.
package canvas

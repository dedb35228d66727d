// Package color implements the floating-point RGB color used by the canvas.
//
// Channels are unbounded: values above 1 or below 0 are legal while colors are
// being blended and are only clamped when a canvas is serialized. Equality is
// tolerance-based (numeric.Epsilon) per channel.
package color

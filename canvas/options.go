// SPDX-License-Identifier: MIT

package canvas

import "strconv"

// Defaults (single source of truth for the PPM format constants).
const (
	// DefaultLineWidth is the longest line EncodePPM emits, in characters.
	DefaultLineWidth = 70

	// DefaultMaxValue is the channel maximum written in the PPM header.
	DefaultMaxValue = 255
)

const (
	panicLineWidthInvalid = "canvas: WithLineWidth: width must hold at least one channel value"
	panicMaxValueInvalid  = "canvas: WithMaxValue: max must be in [1, 65535]"
)

// maxPPMValue is the largest channel maximum the PPM format allows.
const maxPPMValue = 65535

// Option configures the encoders. Constructors panic on nonsensical values.
type Option func(*Options)

// Options is the resolved encoder configuration.
type Options struct {
	lineWidth int
	maxValue  int
}

// WithLineWidth sets the wrap column. It must be wide enough for the widest
// channel value of the default maximum (3 characters). A value wider than the
// column still gets a line of its own.
func WithLineWidth(n int) Option {
	if n < len(strconv.Itoa(DefaultMaxValue)) {
		panic(panicLineWidthInvalid)
	}

	return func(o *Options) { o.lineWidth = n }
}

// WithMaxValue sets the channel maximum (1..65535). Channels are scaled by it
// before clamping, so 1.0 always maps to the maximum.
func WithMaxValue(maxValue int) Option {
	if maxValue < 1 || maxValue > maxPPMValue {
		panic(panicMaxValueInvalid)
	}

	return func(o *Options) { o.maxValue = maxValue }
}

// LineWidth reports the resolved wrap column.
func (o Options) LineWidth() int { return o.lineWidth }

// MaxValue reports the resolved channel maximum.
func (o Options) MaxValue() int { return o.maxValue }

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{lineWidth: DefaultLineWidth, maxValue: DefaultMaxValue}
	for _, set := range opts {
		set(&o)
	}

	return o
}

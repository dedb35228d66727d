// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for comparisons and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - validateNaNInf controls whether Set() and constructors reject NaN/Inf.
//   - eps is the tolerance used by Equal; it defaults to numeric.Epsilon so
//     matrices compare exactly like tuples and colors.
package matrix

import "github.com/katalvlaran/raykernel/numeric"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by Equal.
	DefaultEpsilon = numeric.Epsilon

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the tolerance used by Equal.
//
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0; panic otherwise.
//   - Stage 2: return a setter that writes eps into Options.
//
// Notes:
//   - eps = 0 turns Equal into an exact comparison.
func WithEpsilon(eps float64) Option {
	if !numeric.IsFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// Affects newly created matrices only; existing matrices keep their policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf through Set on newly created matrices.
// Determinant and Inverse still surface non-finite results as errors.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the defaults and returns the
// effective configuration. Exposed so callers and tests can inspect it.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the resolved comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether the resolved policy rejects non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user-provided setters on top of the defaults in
// order (last-writer-wins). It is the canonical internal entry point.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// NewDenseWithOptions is NewDense with an explicit numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
func NewDenseWithOptions(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	return newDenseWithPolicy(rows, cols, o.validateNaNInf)
}

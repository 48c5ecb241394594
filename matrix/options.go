// SPDX-License-Identifier: MIT

// Package matrix: numeric policy and functional options.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance below which magnitudes count as zero in
	// cleanup passes and closeness checks.
	DefaultEpsilon = 1e-8

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultPrecision is the number of decimals used by Format.
	DefaultPrecision = 4
)

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be in [0,17]"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	precision      int     // DefaultPrecision
}

// WithEpsilon sets the numeric tolerance used by Clean and Format.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf relaxes the finite-value guard on matrices built via
// NewFromRowsWith.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithPrecision sets the number of decimals printed by Format.
func WithPrecision(p int) Option {
	if p < 0 || p > 17 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// Epsilon reports the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Precision reports the effective Format precision.
func (o Options) Precision() int { return o.precision }

// NewMatrixOptions resolves opts on top of the documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		precision:      DefaultPrecision,
	}
}

// gatherOptions applies user-provided setters on top of defaults in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

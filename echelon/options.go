// SPDX-License-Identifier: MIT
package echelon

import "math"

const panicEpsilonInvalid = "echelon: WithEpsilon: eps must be finite, non-negative"

// Option configures the zero threshold of a reduction.
type Option func(*options)

type options struct {
	eps float64
}

// WithEpsilon overrides Epsilon. Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

func gatherOptions(opts ...Option) options {
	o := options{eps: Epsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

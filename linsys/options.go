// SPDX-License-Identifier: MIT
package linsys

import (
	"math"

	"github.com/katalvlaran/lvlalg/matrix"
)

// DefaultEpsilon is the pivot threshold and verification tolerance of GaussJordan.
const DefaultEpsilon = matrix.DefaultEpsilon

const panicEpsilonInvalid = "linsys: WithEpsilon: eps must be finite, non-negative"

// Option configures GaussJordan and IsSolvable.
type Option func(*options)

type options struct {
	eps float64
}

// WithEpsilon overrides DefaultEpsilon. Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

func gatherOptions(opts ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

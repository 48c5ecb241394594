// SPDX-License-Identifier: MIT
package eigen

import (
	"math"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/poly"
	"github.com/rs/zerolog"
)

// DefaultEpsilon is the tolerance used by Check and by the Gauss-Jordan step
// that extracts eigenvectors.
const DefaultEpsilon = matrix.DefaultEpsilon

// DefaultVariable is the unknown of the characteristic polynomial.
var DefaultVariable = poly.Var('λ')

const (
	panicEpsilonInvalid  = "eigen: WithEpsilon: eps must be finite, non-negative"
	panicVariableInvalid = "eigen: WithVariable: variable must have a letter"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// WithEpsilon overrides DefaultEpsilon. Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(p *Pipeline) { p.eps = eps }
}

// WithVariable renames the unknown of the characteristic equation.
// Panics on the zero Variable.
func WithVariable(v poly.Variable) Option {
	if v.IsZero() {
		panic(panicVariableInvalid)
	}

	return func(p *Pipeline) { p.variable = v }
}

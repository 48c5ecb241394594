// SPDX-License-Identifier: MIT

// Package roots finds the roots of single-variable polynomial equations of
// degree one to four with closed-form methods: the quadratic formula,
// Cardano and the trigonometric method for cubics, Ferrari for quartics.
//
// Discriminants are rounded to 12 decimal places before their sign is
// inspected and roots are rounded to 10 places, so that exactly repeated
// roots are recognized despite floating noise.
//
// The quartic solver reports real roots only: quadratic factors with a
// negative discriminant are discarded.
package roots

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/lvlalg/poly"
)

// Epsilon is the magnitude at or below which a coefficient counts as zero.
const Epsilon = 1e-8

const (
	discPlaces = 12
	rootPlaces = 10

	newtonSteps = 8
)

var (
	// ErrUnsupported is returned for equations of degree 0 or of degree five and above.
	ErrUnsupported = errors.New("roots: unsupported equation")

	// ErrTermCount is returned when a solver receives the wrong number of coefficients.
	ErrTermCount = errors.New("roots: wrong number of coefficients")

	// ErrLeadingZero is returned when the leading coefficient is zero.
	ErrLeadingZero = errors.New("roots: leading coefficient is zero")

	// ErrMixedVariables is returned when an equation uses more than one variable.
	ErrMixedVariables = poly.ErrMixedVariables

	// ErrInvalidPower is returned for negative powers.
	ErrInvalidPower = errors.New("roots: invalid power")
)

// Kind is the class of an equation by degree.
type Kind int

const (
	Invalid Kind = iota
	Linear
	Quadratic
	Cubic
	Quartic
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	case Quartic:
		return "quartic"
	}

	return "invalid"
}

// Complex is a root. An NaN imaginary part marks a real root.
type Complex struct {
	Re, Im float64
}

// Real returns x as a real root.
func Real(x float64) Complex { return Complex{Re: x, Im: math.NaN()} }

// IsReal reports whether c carries no imaginary part.
func (c Complex) IsReal() bool { return math.IsNaN(c.Im) }

// String renders "2", "-0.5+0.866i" or "-0.5-0.866i".
func (c Complex) String() string {
	re := strconv.FormatFloat(c.Re, 'g', -1, 64)
	if c.IsReal() {
		return re
	}
	sign := "+"
	im := c.Im
	if im < 0 {
		sign, im = "-", -im
	}

	return re + sign + strconv.FormatFloat(im, 'g', -1, 64) + "i"
}

// Roots is the result of a solver. Discriminant is NaN for linear equations;
// for quartics it is the discriminant of the resolvent cubic.
type Roots struct {
	Values       []Complex
	Discriminant float64
	Kind         Kind
}

// Reals returns the real values in order.
func (r Roots) Reals() []float64 {
	var out []float64
	for _, v := range r.Values {
		if v.IsReal() {
			out = append(out, v.Re)
		}
	}

	return out
}

// Classify normalizes eq and reports its kind by degree.
//
// Errors: ErrMixedVariables (more than one variable), ErrInvalidPower.
func Classify(eq poly.Equation) (Kind, error) {
	k, _, err := classify(eq)
	return k, err
}

func classify(eq poly.Equation) (Kind, poly.Terms, error) {
	left := eq.Normalize().Left
	if vars := left.Variables(); len(vars) > 1 {
		return Invalid, nil, fmt.Errorf("Classify(%s): %d variables: %w", eq, len(vars), ErrMixedVariables)
	}
	for _, t := range left {
		if t.Power < 0 {
			return Invalid, nil, fmt.Errorf("Classify(%s): power %d: %w", eq, t.Power, ErrInvalidPower)
		}
	}
	switch left.Degree() {
	case 1:
		return Linear, left, nil
	case 2:
		return Quadratic, left, nil
	case 3:
		return Cubic, left, nil
	case 4:
		return Quartic, left, nil
	}

	return Invalid, left, nil
}

// Solve classifies eq and dispatches to the matching solver.
//
// Errors: ErrUnsupported (the message carries the degree), plus any
// Classify error.
func Solve(eq poly.Equation) (Roots, error) {
	kind, left, err := classify(eq)
	if err != nil {
		return Roots{}, err
	}
	deg := left.Degree()
	coefs := left.Coefficients(deg)
	switch kind {
	case Linear:
		return LinearRoots(coefs)
	case Quadratic:
		return QuadraticRoots(coefs)
	case Cubic:
		return CubicRoots(coefs)
	case Quartic:
		return QuarticRoots(coefs)
	}

	return Roots{}, fmt.Errorf("Solve(%s): degree %d: %w", eq, deg, ErrUnsupported)
}

func checkCoefs(op string, c []float64, want int) error {
	if len(c) != want {
		return fmt.Errorf("%s: got %d coefficients, want %d: %w", op, len(c), want, ErrTermCount)
	}
	if math.Abs(c[0]) <= Epsilon {
		return fmt.Errorf("%s: %w", op, ErrLeadingZero)
	}

	return nil
}

// round rounds x to the given number of decimal places; negative zero
// becomes zero.
func round(x float64, places int) float64 {
	f := math.Pow(10, float64(places))
	return math.Round(x*f)/f + 0
}

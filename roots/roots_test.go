// SPDX-License-Identifier: MIT
package roots_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/roots"
	"github.com/stretchr/testify/require"
)

var x = poly.Var('x')

// equation builds Σ coefs[i]·x^(deg−i) = 0 from highest-first coefficients.
func equation(coefs ...float64) poly.Equation {
	deg := len(coefs) - 1
	var left poly.Terms
	for i, c := range coefs {
		left = append(left, poly.Mono(c, x, deg-i))
	}

	return poly.Equation{Left: left}
}

func sortedReals(r roots.Roots) []float64 {
	out := r.Reals()
	sort.Float64s(out)

	return out
}

func TestQuadraticTwoRealRoots(t *testing.T) {
	r, err := roots.Solve(equation(1, 7, 12))
	require.NoError(t, err)
	require.Equal(t, roots.Quadratic, r.Kind)
	require.Equal(t, 1.0, r.Discriminant)
	require.Equal(t, []float64{-3, -4}, r.Reals())
}

func TestQuadraticRepeatedAndComplex(t *testing.T) {
	r, err := roots.QuadraticRoots([]float64{1, -4, 4})
	require.NoError(t, err)
	require.Zero(t, r.Discriminant)
	require.Equal(t, []float64{2}, r.Reals())

	r, err = roots.QuadraticRoots([]float64{1, 2, 5})
	require.NoError(t, err)
	require.Equal(t, -16.0, r.Discriminant)
	require.Equal(t, []roots.Complex{{Re: -1, Im: 2}, {Re: -1, Im: -2}}, r.Values)
	require.Equal(t, "-1+2i", r.Values[0].String())
	require.Equal(t, "-1-2i", r.Values[1].String())
}

func TestLinear(t *testing.T) {
	r, err := roots.Solve(poly.Equation{Left: poly.Terms{poly.Mono(2, x, 1)}, Right: 5})
	require.NoError(t, err)
	require.Equal(t, roots.Linear, r.Kind)
	require.True(t, math.IsNaN(r.Discriminant))
	require.Equal(t, []float64{2.5}, r.Reals())
	require.Equal(t, "2.5", r.Values[0].String())
}

func TestCubic(t *testing.T) {
	cases := []struct {
		name  string
		coefs []float64
		sign  int // sign of Δ
		reals []float64
		pairs int
	}{
		{"three distinct", []float64{1, -6, 11, -6}, -1, []float64{1, 2, 3}, 0},
		{"double root", []float64{1, 0, -3, 2}, 0, []float64{-2, 1}, 0},
		{"triple root", []float64{1, -3, 3, -1}, 0, []float64{1}, 0},
		{"one real", []float64{1, 0, 0, -1}, 1, []float64{1}, 2},
		{"scaled", []float64{2, -12, 22, -12}, -1, []float64{1, 2, 3}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := roots.CubicRoots(tc.coefs)
			require.NoError(t, err)
			require.Equal(t, roots.Cubic, r.Kind)
			switch tc.sign {
			case -1:
				require.Less(t, r.Discriminant, 0.0)
			case 0:
				require.Zero(t, r.Discriminant)
			case 1:
				require.Greater(t, r.Discriminant, 0.0)
			}
			require.InDeltaSlice(t, tc.reals, sortedReals(r), 1e-9)
			require.Len(t, r.Values, len(tc.reals)+tc.pairs)
		})
	}
}

func TestCubicComplexPair(t *testing.T) {
	r, err := roots.CubicRoots([]float64{1, 0, 0, -1})
	require.NoError(t, err)
	require.InDelta(t, -0.5, r.Values[1].Re, 1e-9)
	require.InDelta(t, math.Sqrt(3)/2, r.Values[1].Im, 1e-9)
	require.InDelta(t, -math.Sqrt(3)/2, r.Values[2].Im, 1e-9)
}

func TestQuartic(t *testing.T) {
	cases := []struct {
		name  string
		coefs []float64
		want  []float64
	}{
		{"biquadratic four roots", []float64{1, -10, 35, -50, 24}, []float64{1, 2, 3, 4}},
		{"ferrari four roots", []float64{1, -5, 5, 5, -6}, []float64{-1, 1, 2, 3}},
		{"complex pair dropped", []float64{1, 0, 0, 0, -1}, []float64{-1, 1}},
		{"no real roots", []float64{1, 0, 2, 0, 1}, nil},
		{"repeated root deduplicated", []float64{1, 0, -2, 0, 1}, []float64{-1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := roots.QuarticRoots(tc.coefs)
			require.NoError(t, err)
			require.Equal(t, roots.Quartic, r.Kind)
			got := sortedReals(r)
			require.Len(t, got, len(tc.want))
			if len(tc.want) > 0 {
				require.InDeltaSlice(t, tc.want, got, 1e-9)
			}
			require.Len(t, r.Values, len(tc.want), "only real roots are reported")
		})
	}
}

// A small odd coefficient makes the resolvent root tiny; the split factors
// divide by √(2m), so m has to keep its full precision.
func TestQuarticSmallOddCoefficient(t *testing.T) {
	cases := []struct {
		name  string
		coefs []float64
		reals int
	}{
		{"q = 1e-4", []float64{1, 0, -1, 1e-4, -100}, 2},
		{"q = 1e-3", []float64{1, 0, -1, 1e-3, -100}, 2},
		{"q = -1e-4", []float64{1, 0, -1, -1e-4, -100}, 2},
		{"four close roots", []float64{1, 0, -5, 1e-6, 4}, 4},
		{"shifted", []float64{1, 2, -1, 1e-2, -100}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := roots.QuarticRoots(tc.coefs)
			require.NoError(t, err)
			require.Len(t, r.Values, tc.reals)
			for _, v := range r.Reals() {
				require.False(t, math.IsInf(v, 0) || math.IsNaN(v), "root %v", v)
				require.InDelta(t, 0, eval(tc.coefs, v), 1e-6, "p(%v)", v)
			}
		})
	}
}

// eval computes Σ coefs[i]·x^(deg−i) by Horner's rule.
func eval(coefs []float64, x float64) float64 {
	var acc float64
	for _, c := range coefs {
		acc = acc*x + c
	}

	return acc
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		eq   poly.Equation
		want roots.Kind
		err  error
	}{
		{"linear", equation(3, 1), roots.Linear, nil},
		{"quadratic", equation(1, 0, -1), roots.Quadratic, nil},
		{"cubic", equation(1, 0, 0, 0), roots.Cubic, nil},
		{"quartic", equation(-1, 0, 0, 0, 2), roots.Quartic, nil},
		{"leading terms cancel", poly.Equation{Left: poly.Terms{
			poly.Mono(1, x, 3), poly.Mono(-1, x, 3), poly.Mono(2, x, 1),
		}}, roots.Linear, nil},
		{"quintic", equation(1, 0, 0, 0, 0, 1), roots.Invalid, nil},
		{"constant", poly.Equation{Left: poly.Terms{poly.Const(2)}, Right: 1}, roots.Invalid, nil},
		{"mixed", poly.Equation{Left: poly.Terms{poly.Mono(1, x, 2), poly.Mono(1, poly.Var('y'), 1)}},
			roots.Invalid, roots.ErrMixedVariables},
		{"negative power", poly.Equation{Left: poly.Terms{poly.Mono(1, x, -1), poly.Const(1)}},
			roots.Invalid, roots.ErrInvalidPower},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := roots.Classify(tc.eq)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, k)
		})
	}
}

func TestSolveUnsupportedCarriesDegree(t *testing.T) {
	_, err := roots.Solve(equation(1, 0, 0, 0, 0, -32))
	require.ErrorIs(t, err, roots.ErrUnsupported)
	require.Contains(t, err.Error(), "degree 5")
}

func TestSolverArgumentErrors(t *testing.T) {
	_, err := roots.QuadraticRoots([]float64{1, 2})
	require.ErrorIs(t, err, roots.ErrTermCount)
	_, err = roots.CubicRoots([]float64{0, 1, 2, 3})
	require.ErrorIs(t, err, roots.ErrLeadingZero)
	_, err = roots.QuarticRoots([]float64{1, 2, 3})
	require.ErrorIs(t, err, roots.ErrTermCount)
	_, err = roots.LinearRoots([]float64{1e-12, 1})
	require.ErrorIs(t, err, roots.ErrLeadingZero)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "quartic", roots.Quartic.String())
	require.Equal(t, "invalid", roots.Kind(9).String())
}

// SPDX-License-Identifier: MIT
package linsys_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/linsys"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/vector"
	"github.com/stretchr/testify/require"
)

func mustSystem(t *testing.T, a [][]float64, b []float64) *linsys.System {
	t.Helper()
	s, err := linsys.NewSystem(matrix.MustFromRows(a), b)
	require.NoError(t, err)

	return s
}

func cramerSystem(t *testing.T) *linsys.System {
	return mustSystem(t, [][]float64{{2, 1, 1}, {1, 3, 1}, {1, 1, 5}}, []float64{2, 5, -7})
}

func TestCramerRoundTrip(t *testing.T) {
	s := cramerSystem(t)
	det, err := matrix.Determinant(s.A)
	require.NoError(t, err)
	require.Equal(t, 22.0, det)

	x, err := linsys.Cramer(s)
	require.NoError(t, err)
	require.Equal(t, vector.Vector{1, 2, -2}, x)
	require.True(t, linsys.IsCramer(s.A))
}

func TestAllMethodsAgree(t *testing.T) {
	s := cramerSystem(t)
	want := vector.Vector{1, 2, -2}

	for _, m := range []linsys.Method{linsys.MethodCramer, linsys.MethodAdjugate, linsys.MethodGaussJordan} {
		t.Run(m.String(), func(t *testing.T) {
			sol, err := linsys.Solve(s, m)
			require.NoError(t, err)
			require.Equal(t, linsys.Single, sol.Count)
			require.Len(t, sol.Vectors, 1)
			require.True(t, sol.Vectors[0].EqualWithin(want, 1e-12), "got %s", sol.Vectors[0])
		})
	}
}

func TestCramerAndAdjugatePreconditions(t *testing.T) {
	degenerate := mustSystem(t, [][]float64{{1, 2}, {2, 4}}, []float64{1, 2})
	_, err := linsys.Cramer(degenerate)
	require.ErrorIs(t, err, matrix.ErrDegenerate)
	_, err = linsys.Adjugate(degenerate)
	require.ErrorIs(t, err, matrix.ErrDegenerate)
	require.False(t, linsys.IsCramer(degenerate.A))

	rect := mustSystem(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{1, 2})
	_, err = linsys.Cramer(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = linsys.Solve(rect, linsys.MethodAdjugate)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.False(t, linsys.IsCramer(rect.A))

	_, err = linsys.Cramer(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestGaussJordanInfinite(t *testing.T) {
	s := mustSystem(t, [][]float64{{1, 1}, {2, 2}}, []float64{2, 4})

	sol, err := linsys.GaussJordan(s)
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, sol.Count)
	require.Equal(t, []vector.Vector{{-1, 1}}, sol.Vectors)
	require.Equal(t, vector.Vector{2, 0}, sol.Particular)
	require.Equal(t, []int{0, -1}, sol.Pivots)

	ok, err := linsys.IsSolvable(s)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGaussJordanUnderdetermined(t *testing.T) {
	// x + 2y + 3z = 6, y + z = 2
	s := mustSystem(t, [][]float64{{1, 2, 3}, {0, 1, 1}}, []float64{6, 2})

	sol, err := linsys.GaussJordan(s)
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, sol.Count)
	require.Len(t, sol.Vectors, 1)

	for _, v := range sol.Vectors {
		av, err := matrix.MatVec(s.A, v)
		require.NoError(t, err)
		require.True(t, vector.Vector(av).IsZero(1e-12), "A·v = %v", av)
	}
	ap, err := matrix.MatVec(s.A, sol.Particular)
	require.NoError(t, err)
	require.True(t, vector.Vector(ap).EqualWithin(s.B, 1e-12))
}

func TestGaussJordanZero(t *testing.T) {
	s := mustSystem(t, [][]float64{{1, 1}, {1, 1}}, []float64{1, 2})

	sol, err := linsys.GaussJordan(s)
	require.NoError(t, err)
	require.Equal(t, linsys.Zero, sol.Count)
	require.Empty(t, sol.Vectors)

	ok, err := linsys.IsSolvable(s)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGaussJordanEpsilonOption(t *testing.T) {
	// the second pivot is 1e-6: a pivot with eps 1e-8, noise with eps 1e-5
	s := mustSystem(t, [][]float64{{1, 0}, {0, 1e-6}}, []float64{1, 0})

	sol, err := linsys.GaussJordan(s)
	require.NoError(t, err)
	require.Equal(t, linsys.Single, sol.Count)

	sol, err = linsys.GaussJordan(s, linsys.WithEpsilon(1e-5))
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, sol.Count)

	require.Panics(t, func() { linsys.WithEpsilon(-1) })
}

func TestIsSolvableFollowsEpsilon(t *testing.T) {
	s := mustSystem(t, [][]float64{{1, 0}, {0, 1e-5}}, []float64{1, 1})
	coarse := linsys.WithEpsilon(1e-3)

	ok, err := linsys.IsSolvable(s)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = linsys.IsSolvable(s, coarse)
	require.NoError(t, err)
	require.False(t, ok)

	sol, err := linsys.GaussJordan(s, coarse)
	require.NoError(t, err)
	require.Equal(t, linsys.Zero, sol.Count)
}

func TestFromEquations(t *testing.T) {
	x1, x2 := poly.IndexedVar('x', 1), poly.IndexedVar('x', 2)
	vars := []poly.Variable{x1, x2}
	eqs := []poly.Equation{
		{Left: poly.Terms{poly.Mono(2, x1, 1), poly.Mono(-1, x2, 1), poly.Const(3)}},
		{Left: poly.Terms{poly.Mono(1, x1, 1), poly.Mono(1, x2, 1)}, Right: 6},
	}
	s, err := linsys.FromEquations(eqs, vars)
	require.NoError(t, err)

	aug, err := s.Augmented()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, -1, -3}, {1, 1, 6}}, aug.RawRows())

	sol, err := linsys.Solve(s, linsys.MethodCramer)
	require.NoError(t, err)
	require.True(t, sol.Vectors[0].EqualWithin(vector.Vector{1, 5}, 1e-12))
}

func TestFromEquationsErrors(t *testing.T) {
	x := poly.Var('x')
	y := poly.Var('y')

	_, err := linsys.FromEquations([]poly.Equation{{Left: poly.Terms{poly.Mono(1, x, 2)}}}, []poly.Variable{x})
	require.ErrorIs(t, err, linsys.ErrNonLinear)

	_, err = linsys.FromEquations([]poly.Equation{{Left: poly.Terms{poly.Mono(1, y, 1)}}}, []poly.Variable{x})
	require.ErrorIs(t, err, linsys.ErrUnknownVariable)

	_, err = linsys.FromEquations(nil, []poly.Variable{x})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestAugmentedRoundTrip(t *testing.T) {
	aug := matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	s, err := linsys.FromAugmented(aug)
	require.NoError(t, err)
	require.Equal(t, vector.Vector{3, 6}, s.B)
	require.Equal(t, 2, s.A.Cols())

	back, err := s.Augmented()
	require.NoError(t, err)
	require.True(t, aug.Equal(back))

	_, err = linsys.FromAugmented(matrix.MustFromRows([][]float64{{1}, {2}}))
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNewSystemLengthMismatch(t *testing.T) {
	_, err := linsys.NewSystem(matrix.MustFromRows([][]float64{{1, 2}}), vector.Vector{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]linsys.Method{
		"cramer":       linsys.MethodCramer,
		" Adjugate ":   linsys.MethodAdjugate,
		"gauss-jordan": linsys.MethodGaussJordan,
		"gauss":        linsys.MethodGaussJordan,
	} {
		got, err := linsys.ParseMethod(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := linsys.ParseMethod("lu")
	require.ErrorIs(t, err, linsys.ErrUnknownMethod)
}

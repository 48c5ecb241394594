// SPDX-License-Identifier: MIT
package poly

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
)

// ErrNoVariable is returned when a polynomial needs a variable and got the zero Variable.
var ErrNoVariable = errors.New("poly: variable required")

// CharacteristicPolynomial returns det(m − v·I) with like terms collapsed,
// highest power first.
//
// The expansion follows the numeric determinant: direct formulas up to 2×2,
// Sarrus at 3×3 and cofactor expansion along the first row beyond, skipping
// entries that are a zero constant. Products are formed by opening brackets
// symbolically.
//
//	[[2,1],[1,3]], λ  →  λ^2 - 5λ + 5
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNoVariable.
func CharacteristicPolynomial(m matrix.Matrix, v Variable) (Terms, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("CharacteristicPolynomial: %w", err)
	}
	if v.IsZero() {
		return nil, fmt.Errorf("CharacteristicPolynomial: %w", ErrNoVariable)
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, fmt.Errorf("CharacteristicPolynomial: %w", err)
	}

	raw := d.RawRows()
	n := len(raw)
	grid := make([][]Part, n)
	for i := range raw {
		grid[i] = make([]Part, n)
		for j, a := range raw[i] {
			if i == j {
				grid[i][j] = GroupOf(Terms{Const(a), Mono(-1, v, 1)})
			} else {
				grid[i][j] = Leaf{Term: Const(a)}
			}
		}
	}

	t, err := symbolicDet(grid)
	if err != nil {
		return nil, fmt.Errorf("CharacteristicPolynomial: %w", err)
	}

	return t, nil
}

// CharacteristicEquation returns CharacteristicPolynomial(m, v) = 0.
func CharacteristicEquation(m matrix.Matrix, v Variable) (Equation, error) {
	t, err := CharacteristicPolynomial(m, v)
	if err != nil {
		return Equation{}, err
	}

	return Equation{Left: t}, nil
}

func symbolicDet(g [][]Part) (Terms, error) {
	switch len(g) {
	case 1:
		return Expand(g[0][0]).Distinct(), nil
	case 2:
		return signedSum([][]Part{
			{g[0][0], g[1][1]},
			{g[0][1], g[1][0]},
		}, []float64{1, -1})
	case 3:
		return signedSum([][]Part{
			{g[0][0], g[1][1], g[2][2]},
			{g[0][1], g[1][2], g[2][0]},
			{g[0][2], g[1][0], g[2][1]},
			{g[0][2], g[1][1], g[2][0]},
			{g[0][0], g[1][2], g[2][1]},
			{g[0][1], g[1][0], g[2][2]},
		}, []float64{1, 1, 1, -1, -1, -1})
	}

	var acc Part = Group{}
	sign := 1.0
	for j := range g[0] {
		if !isZeroConst(g[0][j]) {
			sub, err := symbolicDet(excludePart(g, 0, j))
			if err != nil {
				return nil, err
			}
			term, err := product(g[0][j], GroupOf(sub))
			if err != nil {
				return nil, err
			}
			acc = Add(acc, GroupOf(term.Scale(sign)))
		}
		sign = -sign
	}

	return Expand(acc).Distinct(), nil
}

// signedSum returns Σ signs[k]·Π products[k].
func signedSum(products [][]Part, signs []float64) (Terms, error) {
	var out Terms
	for k, factors := range products {
		p, err := product(factors...)
		if err != nil {
			return nil, err
		}
		out = out.Plus(p.Scale(signs[k]))
	}

	return out.Distinct(), nil
}

// product multiplies parts left to right, collapsing after each step.
func product(parts ...Part) (Terms, error) {
	var acc Part = Leaf{Term: Const(1)}
	for _, p := range parts {
		next, err := Multiply(acc, p)
		if err != nil {
			return nil, err
		}
		acc = GroupOf(Expand(next).Distinct())
	}

	return Expand(acc), nil
}

func isZeroConst(p Part) bool {
	l, ok := p.(Leaf)
	return ok && l.Term.IsConst() && l.Term.Coef == 0
}

func excludePart(g [][]Part, row, col int) [][]Part {
	out := make([][]Part, 0, len(g)-1)
	for i := range g {
		if i == row {
			continue
		}
		r := make([]Part, 0, len(g)-1)
		r = append(r, g[i][:col]...)
		r = append(r, g[i][col+1:]...)
		out = append(out, r)
	}

	return out
}

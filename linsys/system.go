// SPDX-License-Identifier: MIT

// Package linsys solves linear systems A·x = b.
//
// Three methods are available and the caller picks one:
//
//   - Cramer: x_i = det(A with column i replaced by b) / det(A).
//   - Adjugate: x = A⁻¹·b with A⁻¹ built from the adjugate.
//   - GaussJordan: elimination with partial pivoting that also classifies
//     the system as having zero, one or infinitely many solutions and, in the
//     last case, returns a basis of the null space.
//
// Cramer and Adjugate need a square non-degenerate A and fail with
// matrix.ErrNonSquare or matrix.ErrDegenerate otherwise, so a caller can fall
// back to GaussJordan.
package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/echelon"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/vector"
)

var (
	// ErrNonLinear is returned when an equation has a term of power other than 0 or 1.
	ErrNonLinear = errors.New("linsys: equation is not linear")

	// ErrUnknownVariable is returned when an equation uses a variable outside the given list.
	ErrUnknownVariable = errors.New("linsys: unknown variable")

	// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
	ErrUnknownMethod = errors.New("linsys: unknown method")
)

// System is A·x = B.
type System struct {
	A matrix.Matrix
	B vector.Vector
}

// NewSystem checks that b has one entry per row of a.
func NewSystem(a matrix.Matrix, b vector.Vector) (*System, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("NewSystem: %w", err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, fmt.Errorf("NewSystem: %w", err)
	}

	return &System{A: a, B: b.Clone()}, nil
}

// FromAugmented splits [A|b] into a System; the last column is b.
func FromAugmented(m matrix.Matrix) (*System, error) {
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, fmt.Errorf("FromAugmented: %w", err)
	}
	rows, cols := d.Shape()
	if cols < 2 {
		return nil, fmt.Errorf("FromAugmented: %d column(s): %w", cols, matrix.ErrBadShape)
	}
	rowIdx := make([]int, rows)
	for i := range rowIdx {
		rowIdx[i] = i
	}
	colIdx := make([]int, cols-1)
	for j := range colIdx {
		colIdx[j] = j
	}
	a, err := d.Induced(rowIdx, colIdx)
	if err != nil {
		return nil, fmt.Errorf("FromAugmented: %w", err)
	}
	b, err := d.Col(cols - 1)
	if err != nil {
		return nil, fmt.Errorf("FromAugmented: %w", err)
	}

	return &System{A: a, B: b}, nil
}

// Augmented returns [A|b].
func (s *System) Augmented() (*matrix.Dense, error) {
	if s == nil {
		return nil, fmt.Errorf("Augmented: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNotNil(s.A); err != nil {
		return nil, fmt.Errorf("Augmented: %w", err)
	}
	if err := matrix.ValidateVecLen(s.B, s.A.Rows()); err != nil {
		return nil, fmt.Errorf("Augmented: %w", err)
	}
	d, err := matrix.AsDense(s.A)
	if err != nil {
		return nil, fmt.Errorf("Augmented: %w", err)
	}
	raw := d.RawRows()
	for i := range raw {
		raw[i] = append(raw[i], s.B[i])
	}

	return matrix.NewFromRows(raw)
}

// FromEquations turns linear equations over vars into a numeric system.
// Row i holds the coefficients of eqs[i] in the order of vars; constant
// terms move to the right-hand side.
//
//	2x1 − x2 + 3 = 0  →  [2 −1 | −3]
//
// Errors: ErrNonLinear, ErrUnknownVariable, matrix.ErrBadShape (no equations
// or no variables).
func FromEquations(eqs []poly.Equation, vars []poly.Variable) (*System, error) {
	if len(eqs) == 0 || len(vars) == 0 {
		return nil, fmt.Errorf("FromEquations: %d equations, %d variables: %w", len(eqs), len(vars), matrix.ErrBadShape)
	}
	index := make(map[poly.Variable]int, len(vars))
	for i, v := range vars {
		index[v] = i
	}

	rows := make([][]float64, len(eqs))
	b := make(vector.Vector, len(eqs))
	for i, eq := range eqs {
		rows[i] = make([]float64, len(vars))
		b[i] = eq.Right
		for _, t := range eq.Left {
			switch t.Power {
			case 0:
				b[i] -= t.Coef
			case 1:
				j, ok := index[t.Var]
				if !ok {
					return nil, fmt.Errorf("FromEquations: equation %d: %s: %w", i, t.Var, ErrUnknownVariable)
				}
				rows[i][j] += t.Coef
			default:
				return nil, fmt.Errorf("FromEquations: equation %d: term %s: %w", i, t, ErrNonLinear)
			}
		}
	}
	a, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("FromEquations: %w", err)
	}

	return &System{A: a, B: b}, nil
}

// IsSolvable applies the Rouché–Capelli theorem: the system has a solution
// iff rank(A) == rank([A|b]). WithEpsilon sets the rank threshold, so the
// answer agrees with GaussJordan given the same options.
func IsSolvable(s *System, opts ...Option) (bool, error) {
	eps := echelon.WithEpsilon(gatherOptions(opts...).eps)
	aug, err := s.Augmented()
	if err != nil {
		return false, fmt.Errorf("IsSolvable: %w", err)
	}
	ra, err := echelon.Rank(s.A, eps)
	if err != nil {
		return false, fmt.Errorf("IsSolvable: %w", err)
	}
	rb, err := echelon.Rank(aug, eps)
	if err != nil {
		return false, fmt.Errorf("IsSolvable: %w", err)
	}

	return ra == rb, nil
}

// IsCramer reports whether a is square with a non-zero determinant.
func IsCramer(a matrix.Matrix) bool {
	det, err := matrix.Determinant(a)
	return err == nil && det != 0
}

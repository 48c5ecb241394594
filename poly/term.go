// SPDX-License-Identifier: MIT

// Package poly is a small symbolic algebra over real-coefficient monomials.
// It carries just enough machinery to expand det(A − λI) into a polynomial
// and to express linear equations symbolically before they are solved
// numerically.
package poly

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnlikeTerms is returned when adding terms with different variables or powers.
	ErrUnlikeTerms = errors.New("poly: terms are not alike")

	// ErrMixedVariables is returned when multiplying two distinct non-constant variables.
	ErrMixedVariables = errors.New("poly: mixed variables")
)

// Variable is a symbol with an optional positive index (λ, x1, x2, …).
// The zero Variable marks a constant term.
type Variable struct {
	Letter rune
	Index  int
}

// Var returns the unindexed variable named by letter.
func Var(letter rune) Variable { return Variable{Letter: letter} }

// IndexedVar returns letter with subscript i (i >= 1).
func IndexedVar(letter rune, i int) Variable { return Variable{Letter: letter, Index: i} }

// IsZero reports whether v is the zero Variable.
func (v Variable) IsZero() bool { return v.Letter == 0 }

// Less orders variables by letter, then by index.
func (v Variable) Less(o Variable) bool {
	if v.Letter != o.Letter {
		return v.Letter < o.Letter
	}

	return v.Index < o.Index
}

func (v Variable) String() string {
	if v.IsZero() {
		return ""
	}
	if v.Index > 0 {
		return string(v.Letter) + strconv.Itoa(v.Index)
	}

	return string(v.Letter)
}

// Term is a single monomial Coef·Var^Power; powers are integers. A constant
// has Power 0 and the zero Variable.
type Term struct {
	Coef  float64
	Var   Variable
	Power int
}

// Const returns the constant term c.
func Const(c float64) Term { return Term{Coef: c} }

// Mono returns c·v^p. A zero power yields a constant.
func Mono(c float64, v Variable, p int) Term {
	if p == 0 || v.IsZero() {
		return Const(c)
	}

	return Term{Coef: c, Var: v, Power: p}
}

// IsConst reports whether t has power 0.
func (t Term) IsConst() bool { return t.Power == 0 }

// Like reports whether t and o may be summed: all constants are alike,
// otherwise variable and power must match.
func (t Term) Like(o Term) bool {
	if t.IsConst() && o.IsConst() {
		return true
	}

	return t.Var == o.Var && t.Power == o.Power
}

// Add returns t + o for like terms.
func (t Term) Add(o Term) (Term, error) {
	if !t.Like(o) {
		return Term{}, fmt.Errorf("Add(%s, %s): %w", t, o, ErrUnlikeTerms)
	}
	t.Coef += o.Coef

	return t, nil
}

// Mul returns t·o. A constant factor only scales the other term; two
// non-constant terms must share the variable and their powers add.
func (t Term) Mul(o Term) (Term, error) {
	switch {
	case t.IsConst():
		return o.Scale(t.Coef), nil
	case o.IsConst():
		return t.Scale(o.Coef), nil
	case t.Var != o.Var:
		return Term{}, fmt.Errorf("Mul(%s, %s): %w", t, o, ErrMixedVariables)
	}

	return Term{Coef: t.Coef * o.Coef, Var: t.Var, Power: t.Power + o.Power}, nil
}

// Scale returns c·t.
func (t Term) Scale(c float64) Term {
	t.Coef *= c
	return t
}

// Neg returns −t.
func (t Term) Neg() Term { return t.Scale(-1) }

// Eval returns the value of t at x.
func (t Term) Eval(x float64) float64 {
	v := t.Coef
	if t.Power >= 0 {
		for i := 0; i < t.Power; i++ {
			v *= x
		}
		return v
	}
	for i := 0; i > t.Power; i-- {
		v /= x
	}

	return v
}

// String renders t as "3λ^2", "-x1", "λ" or "5".
func (t Term) String() string {
	if t.IsConst() {
		return formatCoef(t.Coef)
	}
	var b strings.Builder
	switch t.Coef {
	case 1:
	case -1:
		b.WriteByte('-')
	default:
		b.WriteString(formatCoef(t.Coef))
	}
	b.WriteString(t.Var.String())
	if t.Power != 1 {
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(t.Power))
	}

	return b.String()
}

func formatCoef(c float64) string {
	if c == 0 {
		return "0" // no "-0"
	}

	return strconv.FormatFloat(c, 'g', -1, 64)
}

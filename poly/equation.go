// SPDX-License-Identifier: MIT
package poly

// Equation is Left = Right with a constant right-hand side.
type Equation struct {
	Left  Terms
	Right float64
}

// Normalize moves Right to the left side, collapses like terms and sets
// Right to zero.
func (e Equation) Normalize() Equation {
	left := e.Left.Clone()
	if e.Right != 0 {
		left = append(left, Const(-e.Right))
	}

	return Equation{Left: left.Distinct()}
}

func (e Equation) String() string {
	return e.Left.String() + " = " + formatCoef(e.Right)
}

// Linear builds Σ coefs[i]·vars[i] = rhs.
func Linear(coefs []float64, vars []Variable, rhs float64) Equation {
	left := make(Terms, 0, len(coefs))
	for i, c := range coefs {
		if i >= len(vars) {
			break
		}
		left = append(left, Mono(c, vars[i], 1))
	}

	return Equation{Left: left, Right: rhs}
}

// Unknowns returns x1..xn.
func Unknowns(letter rune, n int) []Variable {
	vars := make([]Variable, n)
	for i := range vars {
		vars[i] = IndexedVar(letter, i+1)
	}

	return vars
}

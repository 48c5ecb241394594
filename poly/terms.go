// SPDX-License-Identifier: MIT
package poly

import (
	"fmt"
	"sort"
	"strings"
)

// Terms is an ordered sum of monomials. Duplicate powers are allowed;
// Distinct collapses them.
type Terms []Term

// Clone returns an independent copy of ts.
func (ts Terms) Clone() Terms {
	if ts == nil {
		return nil
	}
	out := make(Terms, len(ts))
	copy(out, ts)

	return out
}

// Plus returns the concatenation ts + o without collapsing.
func (ts Terms) Plus(o Terms) Terms {
	out := make(Terms, 0, len(ts)+len(o))
	out = append(out, ts...)

	return append(out, o...)
}

// Scale returns c·ts.
func (ts Terms) Scale(c float64) Terms {
	out := make(Terms, len(ts))
	for i, t := range ts {
		out[i] = t.Scale(c)
	}

	return out
}

// Neg returns −ts.
func (ts Terms) Neg() Terms { return ts.Scale(-1) }

// Distinct collapses like terms and drops those whose coefficient sums to
// zero. The result is ordered by power, highest first; terms of equal power
// are ordered by variable.
//
//	2λ^2 + λ + 3 − λ^2 − λ  →  λ^2 + 3
func (ts Terms) Distinct() Terms {
	out := make(Terms, 0, len(ts))
	for _, t := range ts {
		merged := false
		for i := range out {
			if out[i].Like(t) {
				out[i].Coef += t.Coef
				merged = true
				break
			}
		}
		if !merged {
			if t.IsConst() {
				t = Const(t.Coef)
			}
			out = append(out, t)
		}
	}

	kept := out[:0]
	for _, t := range out {
		if t.Coef != 0 {
			kept = append(kept, t)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Power != kept[j].Power {
			return kept[i].Power > kept[j].Power
		}
		return kept[i].Var.Less(kept[j].Var)
	})

	return kept
}

// Degree returns the highest power with a non-zero coefficient, or 0.
func (ts Terms) Degree() int {
	deg := 0
	for _, t := range ts.Distinct() {
		if t.Power > deg {
			deg = t.Power
		}
	}

	return deg
}

// Coefficients returns the dense coefficient list of ts for powers
// degree..0, highest first, summing terms of equal power. Powers outside
// [0, degree] are ignored.
func (ts Terms) Coefficients(degree int) []float64 {
	if degree < 0 {
		return nil
	}
	out := make([]float64, degree+1)
	for _, t := range ts {
		if t.Power < 0 || t.Power > degree {
			continue
		}
		out[degree-t.Power] += t.Coef
	}

	return out
}

// Variables returns the distinct non-constant variables of ts in order of
// first appearance.
func (ts Terms) Variables() []Variable {
	var vars []Variable
	for _, t := range ts {
		if t.IsConst() {
			continue
		}
		seen := false
		for _, v := range vars {
			if v == t.Var {
				seen = true
				break
			}
		}
		if !seen {
			vars = append(vars, t.Var)
		}
	}

	return vars
}

// Eval returns the value of ts at x; every variable is bound to x.
func (ts Terms) Eval(x float64) float64 {
	var acc float64
	for _, t := range ts {
		acc += t.Eval(x)
	}

	return acc
}

// String renders ts as "λ^2 - 3λ + 2"; an empty sum renders as "0".
func (ts Terms) String() string {
	if len(ts) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range ts {
		switch {
		case i == 0:
			b.WriteString(t.String())
		case t.Coef < 0:
			b.WriteString(" - ")
			b.WriteString(t.Neg().String())
		default:
			b.WriteString(" + ")
			b.WriteString(t.String())
		}
	}

	return b.String()
}

// OpenBrackets distributes a over b: every term of a times every term of b.
//
//	(λ + 1)(λ − 2)  →  λ^2 − 2λ + λ − 2
func OpenBrackets(a, b Terms) (Terms, error) {
	out := make(Terms, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			p, err := x.Mul(y)
			if err != nil {
				return nil, fmt.Errorf("OpenBrackets: %w", err)
			}
			out = append(out, p)
		}
	}

	return out, nil
}

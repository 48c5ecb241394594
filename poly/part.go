// SPDX-License-Identifier: MIT
package poly

// Part is a node of an unexpanded sum: either a single monomial (Leaf) or
// a sum of parts (Group). The set of variants is closed.
type Part interface {
	isPart()
}

// Leaf holds one monomial.
type Leaf struct{ Term Term }

// Group is the sum of its parts.
type Group struct{ Parts []Part }

func (Leaf) isPart()  {}
func (Group) isPart() {}

// GroupOf wraps every term of ts as a Leaf inside one Group.
func GroupOf(ts Terms) Group {
	g := Group{Parts: make([]Part, len(ts))}
	for i, t := range ts {
		g.Parts[i] = Leaf{Term: t}
	}

	return g
}

// Add returns the sum p + q. Nested groups are flattened one level.
func Add(p, q Part) Part {
	var parts []Part
	for _, x := range []Part{p, q} {
		switch v := x.(type) {
		case Group:
			parts = append(parts, v.Parts...)
		case Leaf:
			parts = append(parts, v)
		}
	}

	return Group{Parts: parts}
}

// Multiply returns the product p·q with brackets opened.
func Multiply(p, q Part) (Part, error) {
	switch a := p.(type) {
	case Leaf:
		switch b := q.(type) {
		case Leaf:
			t, err := a.Term.Mul(b.Term)
			if err != nil {
				return nil, err
			}
			return Leaf{Term: t}, nil
		case Group:
			return distribute(b, func(x Part) (Part, error) { return Multiply(a, x) })
		}
	case Group:
		return distribute(a, func(x Part) (Part, error) { return Multiply(x, q) })
	}

	return Group{}, nil
}

func distribute(g Group, mul func(Part) (Part, error)) (Part, error) {
	out := Group{Parts: make([]Part, 0, len(g.Parts))}
	for _, x := range g.Parts {
		y, err := mul(x)
		if err != nil {
			return nil, err
		}
		out.Parts = append(out.Parts, y)
	}

	return out, nil
}

// Expand flattens p into a plain sum of terms (not collapsed).
func Expand(p Part) Terms {
	switch v := p.(type) {
	case Leaf:
		return Terms{v.Term}
	case Group:
		var out Terms
		for _, x := range v.Parts {
			out = append(out, Expand(x)...)
		}
		return out
	}

	return nil
}

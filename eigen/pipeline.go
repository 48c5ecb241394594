// SPDX-License-Identifier: MIT

// Package eigen computes real eigenvalues and eigenvectors of small square
// matrices by chaining the rest of the engine:
//
//	det(A − λI)          poly.CharacteristicEquation
//	p(λ) = 0             roots.Solve (degree 1..4)
//	(A − λI)·x = 0       linsys.FromEquations + linsys.GaussJordan
//
// Matrices up to 4×4 are supported; larger ones fail with roots.ErrUnsupported
// since no closed form exists past the quartic. Complex eigenvalues are
// reported by Eigenvalues but have no eigenvectors here: Eigenvectors skips
// them and logs the skip.
package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/linsys"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/roots"
	"github.com/katalvlaran/lvlalg/vector"
	"github.com/rs/zerolog"
)

// Eigenvector pairs a real eigenvalue with one vector of its eigenspace.
type Eigenvector struct {
	Value  float64
	Vector vector.Vector
}

func (e Eigenvector) String() string {
	return fmt.Sprintf("λ=%g v=%s", e.Value, e.Vector)
}

// Pipeline holds the configuration shared by every stage. The zero value is
// not usable; build one with New.
type Pipeline struct {
	log      zerolog.Logger
	eps      float64
	variable poly.Variable
}

// New returns a Pipeline with a disabled logger, DefaultEpsilon and λ as
// the unknown.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		log:      zerolog.Nop(),
		eps:      DefaultEpsilon,
		variable: DefaultVariable,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p
}

// CharacteristicEquation returns det(m − λI) = 0, normalized.
func (p *Pipeline) CharacteristicEquation(m matrix.Matrix) (poly.Equation, error) {
	eq, err := poly.CharacteristicEquation(m, p.variable)
	if err != nil {
		return poly.Equation{}, fmt.Errorf("CharacteristicEquation: %w", err)
	}
	eq = eq.Normalize()
	p.log.Debug().Str("polynomial", eq.Left.String()).Int("degree", eq.Left.Degree()).Msg("characteristic equation")

	return eq, nil
}

// Eigenvalues solves the characteristic equation of m.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, roots.ErrUnsupported
// (5×5 and larger).
func (p *Pipeline) Eigenvalues(m matrix.Matrix) (roots.Roots, error) {
	eq, err := p.CharacteristicEquation(m)
	if err != nil {
		return roots.Roots{}, fmt.Errorf("Eigenvalues: %w", err)
	}
	kind, err := roots.Classify(eq)
	if err != nil {
		return roots.Roots{}, fmt.Errorf("Eigenvalues: %w", err)
	}
	p.log.Debug().Stringer("kind", kind).Msg("classified")

	rs, err := roots.Solve(eq)
	if err != nil {
		return roots.Roots{}, fmt.Errorf("Eigenvalues: %w", err)
	}
	for _, v := range rs.Values {
		p.log.Debug().Stringer("value", v).Msg("eigenvalue")
	}

	return rs, nil
}

// Eigenvectors returns, for every distinct real eigenvalue of m, a basis of
// its eigenspace. Each basis vector becomes one Eigenvector, so a repeated
// eigenvalue with a two-dimensional eigenspace contributes two entries.
//
// The vectors are not normalized: every free unknown of (A − λI)·x = 0 is set
// to 1 in turn.
func (p *Pipeline) Eigenvectors(m matrix.Matrix) ([]Eigenvector, error) {
	_, evs, err := p.eigenpairs(m)
	if err != nil {
		return nil, fmt.Errorf("Eigenvectors: %w", err)
	}

	return evs, nil
}

// Eigenpairs returns the eigenvalues of m, complex ones included, together
// with the eigenvectors of the real ones. The characteristic equation is
// solved once.
func (p *Pipeline) Eigenpairs(m matrix.Matrix) (roots.Roots, []Eigenvector, error) {
	rs, evs, err := p.eigenpairs(m)
	if err != nil {
		return roots.Roots{}, nil, fmt.Errorf("Eigenpairs: %w", err)
	}

	return rs, evs, nil
}

func (p *Pipeline) eigenpairs(m matrix.Matrix) (roots.Roots, []Eigenvector, error) {
	rs, err := p.Eigenvalues(m)
	if err != nil {
		return roots.Roots{}, nil, err
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return roots.Roots{}, nil, err
	}

	var (
		out  []Eigenvector
		seen []float64
	)
	for _, v := range rs.Values {
		if !v.IsReal() {
			p.log.Warn().Stringer("value", v).Msg("skipped complex eigenvalue")
			continue
		}
		if containsWithin(seen, v.Re, p.eps) {
			continue
		}
		seen = append(seen, v.Re)

		basis, err := p.eigenspace(d, v.Re)
		if err != nil {
			return roots.Roots{}, nil, fmt.Errorf("λ=%g: %w", v.Re, err)
		}
		p.log.Debug().Float64("value", v.Re).Int("basis", len(basis)).Msg("eigenspace")
		for _, b := range basis {
			out = append(out, Eigenvector{Value: v.Re, Vector: b})
		}
	}

	return rs, out, nil
}

// eigenspace solves (A − λI)·x = 0 through the symbolic layer: each row
// A_i − λ·e_i becomes the linear equation Σ c_j·x_j = 0.
func (p *Pipeline) eigenspace(d *matrix.Dense, lambda float64) ([]vector.Vector, error) {
	n := d.Rows()
	vars := poly.Unknowns('x', n)
	eqs := make([]poly.Equation, n)
	for i := 0; i < n; i++ {
		row, err := d.Row(i)
		if err != nil {
			return nil, err
		}
		e, err := vector.Unit(n, i)
		if err != nil {
			return nil, err
		}
		shifted, err := vector.Sum(row, vector.Scale(e, -lambda))
		if err != nil {
			return nil, err
		}
		eqs[i] = poly.Linear(shifted, vars, 0)
	}

	s, err := linsys.FromEquations(eqs, vars)
	if err != nil {
		return nil, err
	}
	sol, err := linsys.GaussJordan(s, linsys.WithEpsilon(p.eps))
	if err != nil {
		return nil, err
	}
	if sol.Count != linsys.Infinite {
		// λ is not close enough to a root for A − λI to lose rank.
		p.log.Warn().Float64("value", lambda).Stringer("count", sol.Count).Msg("no eigenspace found")
		return nil, nil
	}

	return sol.Vectors, nil
}

// Check reports whether A·v ≈ λ·v within the pipeline's epsilon.
// A zero vector is never an eigenvector.
func (p *Pipeline) Check(m matrix.Matrix, ev Eigenvector) (bool, error) {
	if ev.Vector.IsZero(p.eps) {
		return false, nil
	}
	av, err := matrix.MatVec(m, ev.Vector)
	if err != nil {
		return false, fmt.Errorf("Check: %w", err)
	}

	return vector.Vector(av).EqualWithin(vector.Scale(ev.Vector, ev.Value), p.eps), nil
}

func containsWithin(xs []float64, x, eps float64) bool {
	for _, y := range xs {
		if math.Abs(x-y) <= eps {
			return true
		}
	}

	return false
}

var defaultPipeline = New()

// CharacteristicEquation uses the default pipeline.
func CharacteristicEquation(m matrix.Matrix) (poly.Equation, error) {
	return defaultPipeline.CharacteristicEquation(m)
}

// Eigenvalues uses the default pipeline.
func Eigenvalues(m matrix.Matrix) (roots.Roots, error) {
	return defaultPipeline.Eigenvalues(m)
}

// Eigenvectors uses the default pipeline.
func Eigenvectors(m matrix.Matrix) ([]Eigenvector, error) {
	return defaultPipeline.Eigenvectors(m)
}

// Eigenpairs uses the default pipeline.
func Eigenpairs(m matrix.Matrix) (roots.Roots, []Eigenvector, error) {
	return defaultPipeline.Eigenpairs(m)
}

// Check uses the default pipeline.
func Check(m matrix.Matrix, ev Eigenvector) (bool, error) {
	return defaultPipeline.Check(m, ev)
}

// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlalg/echelon"
	"github.com/katalvlaran/lvlalg/eigen"
	"github.com/katalvlaran/lvlalg/internal/config"
	"github.com/katalvlaran/lvlalg/linsys"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/roots"
	"github.com/katalvlaran/lvlalg/vector"
)

// Runner executes jobs with a fixed configuration. It holds no mutable
// state, so one Runner may serve concurrent jobs.
type Runner struct {
	Config config.Config
	Log    zerolog.Logger
}

// NewRunner returns a Runner; cfg must already be validated.
func NewRunner(cfg config.Config, log zerolog.Logger) Runner {
	return Runner{Config: cfg, Log: log}
}

// Run executes job and returns its rendered result.
func (r Runner) Run(job Job) (string, error) {
	switch job.Op {
	case OpRoots:
		return r.polyRoots(job)
	case OpDet, OpInverse, OpRank, OpREF, OpRREF, OpSolve, OpCharPoly, OpEigen:
	default:
		return "", fmt.Errorf("%s: %q: %w", job.Name, job.Op, ErrUnknownOp)
	}

	if len(job.Matrix) == 0 {
		return "", fmt.Errorf("%s: %s needs a matrix: %w", job.Name, job.Op, ErrMissingInput)
	}
	m, err := matrix.NewFromRows(job.Matrix)
	if err != nil {
		return "", fmt.Errorf("%s: %w", job.Name, err)
	}

	var out string
	switch job.Op {
	case OpDet:
		out, err = r.det(m)
	case OpInverse:
		out, err = r.inverse(m)
	case OpRank:
		out, err = r.rank(m)
	case OpREF:
		out, err = r.reduce(m, echelon.RowEchelon)
	case OpRREF:
		out, err = r.reduce(m, echelon.ReducedRowEchelon)
	case OpSolve:
		out, err = r.solve(m, job)
	case OpCharPoly:
		out, err = r.charPoly(m)
	case OpEigen:
		out, err = r.eigenpairs(m)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", job.Name, err)
	}

	return out, nil
}

func (r Runner) formatOpts() []matrix.Option {
	return []matrix.Option{matrix.WithEpsilon(r.Config.Epsilon), matrix.WithPrecision(r.Config.Precision)}
}

func (r Runner) echelonOpts() []echelon.Option {
	return []echelon.Option{echelon.WithEpsilon(r.Config.Epsilon)}
}

func (r Runner) scalar(x float64) string {
	return strconv.FormatFloat(x, 'f', r.Config.Precision, 64)
}

func (r Runner) vec(v vector.Vector) string {
	parts := make([]string, len(v))
	for i, x := range v.Clean(r.Config.Epsilon) {
		parts[i] = r.scalar(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func (r Runner) det(m matrix.Matrix) (string, error) {
	d, err := matrix.Determinant(m)
	if err != nil {
		return "", err
	}

	return r.scalar(d), nil
}

func (r Runner) inverse(m matrix.Matrix) (string, error) {
	inv, err := matrix.Inverse(m)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(matrix.Format(inv, r.formatOpts()...), "\n"), nil
}

func (r Runner) rank(m matrix.Matrix) (string, error) {
	k, err := echelon.Rank(m, r.echelonOpts()...)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(k), nil
}

func (r Runner) reduce(m matrix.Matrix, fn func(matrix.Matrix, ...echelon.Option) (*matrix.Dense, error)) (string, error) {
	e, err := fn(m, r.echelonOpts()...)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(matrix.Format(e, r.formatOpts()...), "\n"), nil
}

func (r Runner) solve(m matrix.Matrix, job Job) (string, error) {
	if job.RHS == nil {
		return "", fmt.Errorf("solve needs rhs: %w", ErrMissingInput)
	}
	method := r.Config.SolveMethod()
	if job.Method != "" {
		var err error
		if method, err = linsys.ParseMethod(job.Method); err != nil {
			return "", err
		}
	}
	s, err := linsys.NewSystem(m, job.RHS)
	if err != nil {
		return "", err
	}
	sol, err := linsys.Solve(s, method, linsys.WithEpsilon(r.Config.Epsilon))
	if err != nil {
		return "", err
	}
	r.Log.Debug().Stringer("method", method).Stringer("count", sol.Count).Msg("solved")

	var b strings.Builder
	fmt.Fprintf(&b, "solutions: %s", sol.Count)
	switch sol.Count {
	case linsys.Single:
		fmt.Fprintf(&b, "\nx = %s", r.vec(sol.Vectors[0]))
	case linsys.Infinite:
		fmt.Fprintf(&b, "\nparticular = %s", r.vec(sol.Particular))
		for i, v := range sol.Vectors {
			fmt.Fprintf(&b, "\nbasis[%d] = %s", i+1, r.vec(v))
		}
	}

	return b.String(), nil
}

func (r Runner) pipeline() *eigen.Pipeline {
	return eigen.New(
		eigen.WithLogger(r.Log),
		eigen.WithEpsilon(r.Config.Epsilon),
	)
}

func (r Runner) charPoly(m matrix.Matrix) (string, error) {
	eq, err := r.pipeline().CharacteristicEquation(m)
	if err != nil {
		return "", err
	}

	return eq.String(), nil
}

func (r Runner) eigenpairs(m matrix.Matrix) (string, error) {
	rs, evs, err := r.pipeline().Eigenpairs(m)
	if err != nil {
		return "", err
	}

	values := make([]string, len(rs.Values))
	for i, v := range rs.Values {
		values[i] = v.String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "eigenvalues: %s", strings.Join(values, ", "))
	for _, ev := range evs {
		fmt.Fprintf(&b, "\nλ = %s  v = %s", r.scalar(ev.Value), r.vec(ev.Vector))
	}

	return b.String(), nil
}

// polyRoots reads job.Coefs highest power first: [1, 7, 12] is x^2 + 7x + 12 = 0.
func (r Runner) polyRoots(job Job) (string, error) {
	if len(job.Coefs) == 0 {
		return "", fmt.Errorf("%s: roots needs coefs: %w", job.Name, ErrMissingInput)
	}
	x := poly.Var('x')
	deg := len(job.Coefs) - 1
	left := make(poly.Terms, 0, len(job.Coefs))
	for i, c := range job.Coefs {
		left = append(left, poly.Mono(c, x, deg-i))
	}
	eq := poly.Equation{Left: left}

	rs, err := roots.Solve(eq)
	if err != nil {
		return "", fmt.Errorf("%s: %w", job.Name, err)
	}

	values := make([]string, len(rs.Values))
	for i, v := range rs.Values {
		values[i] = v.String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "equation: %s\nkind: %s", eq.Normalize(), rs.Kind)
	if rs.Kind != roots.Linear {
		fmt.Fprintf(&b, "\ndiscriminant: %s", strconv.FormatFloat(rs.Discriminant, 'g', -1, 64))
	}
	fmt.Fprintf(&b, "\nroots: %s", strings.Join(values, ", "))

	return b.String(), nil
}

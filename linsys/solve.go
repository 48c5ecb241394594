// SPDX-License-Identifier: MIT
package linsys

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/vector"
)

// SolutionCount classifies a system by its number of solutions.
type SolutionCount int

const (
	Zero SolutionCount = iota
	Single
	Infinite
)

func (c SolutionCount) String() string {
	switch c {
	case Single:
		return "single"
	case Infinite:
		return "infinite"
	}

	return "zero"
}

// Solution is the outcome of solving a system.
//
//   - Zero: Vectors is empty.
//   - Single: Vectors holds the unique solution.
//   - Infinite: Vectors is a basis of the null space of A and Particular is
//     the solution with every free variable set to 0.
//
// Pivots maps each unknown to the row holding its pivot, or −1 for a free
// variable. It is only filled by GaussJordan.
type Solution struct {
	Count      SolutionCount
	Vectors    []vector.Vector
	Particular vector.Vector
	Pivots     []int
}

// Method selects a solving algorithm.
type Method int

const (
	MethodGaussJordan Method = iota
	MethodCramer
	MethodAdjugate
)

func (m Method) String() string {
	switch m {
	case MethodCramer:
		return "cramer"
	case MethodAdjugate:
		return "adjugate"
	}

	return "gauss-jordan"
}

// ParseMethod maps "cramer", "adjugate" and "gauss-jordan" (or "gauss") to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cramer":
		return MethodCramer, nil
	case "adjugate", "inverse":
		return MethodAdjugate, nil
	case "gauss-jordan", "gauss", "gaussjordan":
		return MethodGaussJordan, nil
	}

	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}

// Solve runs the selected method. Nothing is chosen automatically: a
// degenerate matrix passed with MethodCramer fails with matrix.ErrDegenerate.
func Solve(s *System, method Method, opts ...Option) (Solution, error) {
	switch method {
	case MethodCramer:
		x, err := Cramer(s)
		if err != nil {
			return Solution{}, err
		}
		return Solution{Count: Single, Vectors: []vector.Vector{x}}, nil
	case MethodAdjugate:
		x, err := Adjugate(s)
		if err != nil {
			return Solution{}, err
		}
		return Solution{Count: Single, Vectors: []vector.Vector{x}}, nil
	case MethodGaussJordan:
		return GaussJordan(s, opts...)
	}

	return Solution{}, fmt.Errorf("Solve: %v: %w", method, ErrUnknownMethod)
}

// Cramer solves a square non-degenerate system by Cramer's rule.
//
// Errors: matrix.ErrNonSquare, matrix.ErrDegenerate (det(A) == 0),
// matrix.ErrDimensionMismatch.
func Cramer(s *System) (vector.Vector, error) {
	if err := validateSquareSystem(s); err != nil {
		return nil, fmt.Errorf("Cramer: %w", err)
	}
	det, err := matrix.Determinant(s.A)
	if err != nil {
		return nil, fmt.Errorf("Cramer: %w", err)
	}
	if det == 0 {
		return nil, fmt.Errorf("Cramer: %w", matrix.ErrDegenerate)
	}

	x := make(vector.Vector, s.A.Cols())
	for i := range x {
		ai, err := matrix.ReplaceCol(s.A, i, s.B)
		if err != nil {
			return nil, fmt.Errorf("Cramer: %w", err)
		}
		di, err := matrix.Determinant(ai)
		if err != nil {
			return nil, fmt.Errorf("Cramer: %w", err)
		}
		x[i] = di / det
	}

	return x, nil
}

// Adjugate solves a square non-degenerate system as x = A⁻¹·b.
//
// Errors: matrix.ErrNonSquare, matrix.ErrDegenerate, matrix.ErrDimensionMismatch.
func Adjugate(s *System) (vector.Vector, error) {
	if err := validateSquareSystem(s); err != nil {
		return nil, fmt.Errorf("Adjugate: %w", err)
	}
	inv, err := matrix.Inverse(s.A)
	if err != nil {
		return nil, fmt.Errorf("Adjugate: %w", err)
	}
	x, err := matrix.MatVec(inv, s.B)
	if err != nil {
		return nil, fmt.Errorf("Adjugate: %w", err)
	}

	return x, nil
}

func validateSquareSystem(s *System) error {
	if s == nil {
		return matrix.ErrNilMatrix
	}
	if err := matrix.ValidateSquareNonNil(s.A); err != nil {
		return err
	}

	return matrix.ValidateVecLen(s.B, s.A.Rows())
}

// GaussJordan reduces [A|b] with partial pivoting, recording for every
// unknown the row of its pivot. Pivoted unknowns are back-filled as
// rhs/pivot with free unknowns at 0, and the result is checked against every
// original equation within epsilon.
//
//   - a failed check means Zero solutions;
//   - any free unknown means Infinite, with one null-space basis vector per
//     free unknown (that unknown set to 1, the other free ones 0);
//   - otherwise Single.
//
// Complexity: O(n·m·min(n,m)).
func GaussJordan(s *System, opts ...Option) (Solution, error) {
	o := gatherOptions(opts...)
	aug, err := s.Augmented()
	if err != nil {
		return Solution{}, fmt.Errorf("GaussJordan: %w", err)
	}
	a := aug.RawRows()
	n, m := s.A.Rows(), s.A.Cols()

	where := make([]int, m)
	for i := range where {
		where[i] = -1
	}
	row := 0
	for col := 0; col < m && row < n; col++ {
		sel := row
		for i := row; i < n; i++ {
			if math.Abs(a[i][col]) > math.Abs(a[sel][col]) {
				sel = i
			}
		}
		if math.Abs(a[sel][col]) <= o.eps {
			continue
		}
		a[sel], a[row] = a[row], a[sel]
		where[col] = row

		for i := 0; i < n; i++ {
			if i == row {
				continue
			}
			c := a[i][col] / a[row][col]
			if c == 0 {
				continue
			}
			for j := col; j <= m; j++ {
				a[i][j] -= a[row][j] * c
			}
		}
		row++
	}

	ans := make(vector.Vector, m)
	for j := 0; j < m; j++ {
		if where[j] != -1 {
			ans[j] = a[where[j]][m] / a[where[j]][j]
		}
	}

	ok, err := satisfies(s, ans, o.eps)
	if err != nil {
		return Solution{}, fmt.Errorf("GaussJordan: %w", err)
	}
	if !ok {
		return Solution{Count: Zero, Pivots: where}, nil
	}
	ans = ans.Clean(o.eps)

	var basis []vector.Vector
	for f := 0; f < m; f++ {
		if where[f] != -1 {
			continue
		}
		v := make(vector.Vector, m)
		v[f] = 1
		for c := 0; c < m; c++ {
			if r := where[c]; r != -1 {
				v[c] = -a[r][f] / a[r][c]
			}
		}
		basis = append(basis, v.Clean(o.eps))
	}
	if len(basis) > 0 {
		return Solution{Count: Infinite, Vectors: basis, Particular: ans, Pivots: where}, nil
	}

	return Solution{Count: Single, Vectors: []vector.Vector{ans}, Particular: ans, Pivots: where}, nil
}

// satisfies checks |A_i·x − b_i| <= eps for every row.
func satisfies(s *System, x vector.Vector, eps float64) (bool, error) {
	ax, err := matrix.MatVec(s.A, x)
	if err != nil {
		return false, err
	}

	return vector.Vector(ax).EqualWithin(s.B, eps), nil
}

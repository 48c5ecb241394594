// SPDX-License-Identifier: MIT
package echelon

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/matrix"
)

// Epsilon is the magnitude at or below which an entry counts as zero.
const Epsilon = matrix.DefaultEpsilon

// ErrReductionInvariant is returned when a reduced matrix fails its shape check.
var ErrReductionInvariant = errors.New("echelon: reduction invariant violated")

const (
	opRowEchelon   = "RowEchelon"
	opReducedInPl  = "ReducedRowEchelonInPlace"
	opReduced      = "ReducedRowEchelon"
	opPivotColumns = "PivotColumns"
)

func echelonErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// RowEchelon returns the row-echelon form of m as a new matrix.
//
// Steps: scrub noise, sink zero rows, then for each pivot position take the
// first row at or below it with a non-zero entry in the current column
// (advancing the column when there is none) and eliminate below it.
//
// An input that is already in row-echelon form comes back unchanged.
//
// Errors: matrix.ErrNilMatrix; ErrReductionInvariant.
func RowEchelon(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	eps := gatherOptions(opts...).eps
	d, err := matrix.Clean(m, eps)
	if err != nil {
		return nil, echelonErrorf(opRowEchelon, err)
	}
	forward(d, eps)
	if !IsRowEchelon(d, opts...) {
		return nil, echelonErrorf(opRowEchelon, ErrReductionInvariant)
	}

	return d, nil
}

// ReducedRowEchelonInPlace rewrites d into reduced row-echelon form:
// every pivot equals 1 and is the only non-zero entry in its column.
// This is the only function in the package that mutates its argument.
func ReducedRowEchelonInPlace(d *matrix.Dense, opts ...Option) error {
	eps := gatherOptions(opts...).eps
	if err := matrix.ValidateNotNil(d); err != nil {
		return echelonErrorf(opReducedInPl, err)
	}
	d.CleanInPlace(eps)
	forward(d, eps)
	backward(d, eps)
	if !IsReducedRowEchelon(d, opts...) {
		return echelonErrorf(opReducedInPl, ErrReductionInvariant)
	}

	return nil
}

// ReducedRowEchelon is the value-returning form of ReducedRowEchelonInPlace.
func ReducedRowEchelon(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	d, err := matrix.Clean(m, gatherOptions(opts...).eps)
	if err != nil {
		return nil, echelonErrorf(opReduced, err)
	}
	if err = ReducedRowEchelonInPlace(d, opts...); err != nil {
		return nil, echelonErrorf(opReduced, err)
	}

	return d, nil
}

// forward performs Gaussian elimination below the pivots, in place.
func forward(d *matrix.Dense, eps float64) {
	rows, cols := d.Shape()
	sinkZeroRows(d, eps)

	r := 0
	for c := 0; c < cols && r < rows; c++ {
		p := -1
		for i := r; i < rows; i++ {
			if math.Abs(at(d, i, c)) > eps {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		_ = d.SwapRowsInPlace(r, p)

		pivot := at(d, r, c)
		for i := r + 1; i < rows; i++ {
			f := at(d, i, c)
			if f == 0 {
				continue
			}
			_ = d.AddScaledRowInPlace(i, r, -f/pivot)
			_ = d.Set(i, c, 0)
		}
		d.CleanInPlace(eps)
		r++
	}
	sinkZeroRows(d, eps)
}

// backward normalizes pivots to 1 and clears the entries above them.
// Assumes d is in row-echelon form.
func backward(d *matrix.Dense, eps float64) {
	rows, _ := d.Shape()
	for r := rows - 1; r >= 0; r-- {
		c := leadingColumn(d, r, eps)
		if c < 0 {
			continue
		}
		_ = d.ScaleRowInPlace(r, 1/at(d, r, c))
		_ = d.Set(r, c, 1)
		for i := 0; i < r; i++ {
			f := at(d, i, c)
			if f == 0 {
				continue
			}
			_ = d.AddScaledRowInPlace(i, r, -f)
			_ = d.Set(i, c, 0)
		}
		d.CleanInPlace(eps)
	}
}

// sinkZeroRows moves all-zero rows to the bottom, keeping the relative
// order of the remaining rows.
func sinkZeroRows(d *matrix.Dense, eps float64) {
	rows, cols := d.Shape()
	raw := d.RawRows()
	order := make([]int, 0, rows)
	var zeros []int
	for i := 0; i < rows; i++ {
		if leadingColumn(d, i, eps) < 0 {
			zeros = append(zeros, i)
		} else {
			order = append(order, i)
		}
	}
	order = append(order, zeros...)
	for i, src := range order {
		if i == src {
			continue
		}
		for j := 0; j < cols; j++ {
			_ = d.Set(i, j, raw[src][j])
		}
	}
}

// IsRowEchelon reports whether every row's leading entry lies strictly to the
// right of the leading entry of the row above, with all zero rows last.
func IsRowEchelon(m matrix.Matrix, opts ...Option) bool {
	if matrix.ValidateNotNil(m) != nil {
		return false
	}
	eps := gatherOptions(opts...).eps
	prev := -1
	seenZero := false
	for i := 0; i < m.Rows(); i++ {
		lead := leadingColumn(m, i, eps)
		if lead < 0 {
			seenZero = true
			continue
		}
		if seenZero || lead <= prev {
			return false
		}
		prev = lead
	}

	return true
}

// IsReducedRowEchelon reports row-echelon shape with unit pivots that are
// the only non-zero entries of their columns.
func IsReducedRowEchelon(m matrix.Matrix, opts ...Option) bool {
	if !IsRowEchelon(m, opts...) {
		return false
	}
	eps := gatherOptions(opts...).eps
	for i := 0; i < m.Rows(); i++ {
		c := leadingColumn(m, i, eps)
		if c < 0 {
			break
		}
		if math.Abs(at(m, i, c)-1) > eps {
			return false
		}
		for k := 0; k < m.Rows(); k++ {
			if k != i && math.Abs(at(m, k, c)) > eps {
				return false
			}
		}
	}

	return true
}

// PivotColumns returns the pivot column of each non-zero row of the
// row-echelon form of m, in row order.
func PivotColumns(m matrix.Matrix, opts ...Option) ([]int, error) {
	ref, err := RowEchelon(m, opts...)
	if err != nil {
		return nil, echelonErrorf(opPivotColumns, err)
	}
	eps := gatherOptions(opts...).eps
	var pivots []int
	for i := 0; i < ref.Rows(); i++ {
		c := leadingColumn(ref, i, eps)
		if c < 0 {
			break
		}
		pivots = append(pivots, c)
	}

	return pivots, nil
}

// leadingColumn returns the column of the first non-zero entry of row i, or -1.
func leadingColumn(m matrix.Matrix, i int, eps float64) int {
	for j := 0; j < m.Cols(); j++ {
		if math.Abs(at(m, i, j)) > eps {
			return j
		}
	}

	return -1
}

// at reads an entry whose indices are in range by construction.
func at(m matrix.Matrix, i, j int) float64 {
	v, _ := m.At(i, j)
	return v
}

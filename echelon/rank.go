// SPDX-License-Identifier: MIT
package echelon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/combin"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Rank returns the number of linearly independent rows of m.
//
// Gaussian elimination with partial pivoting: for each column the unused row
// with the largest magnitude becomes the pivot and is marked used; its column
// is cleared in every other row. Magnitudes at or below Epsilon (or the
// WithEpsilon override) count as zero.
//
// Complexity: O(r·c·min(r,c)).
func Rank(m matrix.Matrix, opts ...Option) (int, error) {
	eps := gatherOptions(opts...).eps
	d, err := matrix.AsDense(m)
	if err != nil {
		return 0, echelonErrorf("Rank", err)
	}
	a := d.RawRows()
	rows, cols := d.Shape()

	used := make([]bool, rows)
	rank := 0
	for j := 0; j < cols; j++ {
		p := -1
		for i := 0; i < rows; i++ {
			if used[i] || math.Abs(a[i][j]) <= eps {
				continue
			}
			if p < 0 || math.Abs(a[i][j]) > math.Abs(a[p][j]) {
				p = i
			}
		}
		if p < 0 {
			continue
		}
		rank++
		used[p] = true
		for k := j + 1; k < cols; k++ {
			a[p][k] /= a[p][j]
		}
		for i := 0; i < rows; i++ {
			if i == p || math.Abs(a[i][j]) <= eps {
				continue
			}
			for k := j + 1; k < cols; k++ {
				a[i][k] -= a[p][k] * a[i][j]
			}
		}
	}

	return rank, nil
}

// RankByMinors returns the largest k for which m has a k×k minor with a
// non-zero determinant. Row and column subsets come from gen; a nil gen
// uses combin.Combinations.
//
// Deprecated: exponential in the matrix size. Use Rank.
func RankByMinors(m matrix.Matrix, gen combin.Generator, opts ...Option) (int, error) {
	eps := gatherOptions(opts...).eps
	d, err := matrix.AsDense(m)
	if err != nil {
		return 0, echelonErrorf("RankByMinors", err)
	}
	if gen == nil {
		gen = combin.Combinations
	}
	rows, cols := d.Shape()

	for k := min(rows, cols); k >= 1; k-- {
		rowSets, err := gen(rows, k)
		if err != nil {
			return 0, echelonErrorf("RankByMinors", err)
		}
		colSets, err := gen(cols, k)
		if err != nil {
			return 0, echelonErrorf("RankByMinors", err)
		}
		for _, rs := range rowSets {
			for _, cs := range colSets {
				sub, err := d.Induced(rs, cs)
				if err != nil {
					return 0, echelonErrorf("RankByMinors", fmt.Errorf("k=%d: %w", k, err))
				}
				det, err := matrix.Determinant(sub)
				if err != nil {
					return 0, echelonErrorf("RankByMinors", err)
				}
				if math.Abs(det) > eps {
					return k, nil
				}
			}
		}
	}

	return 0, nil
}

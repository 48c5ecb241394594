// SPDX-License-Identifier: MIT

// Package combin enumerates k-element index subsets of [0,n).
// It exists to feed the minors-based rank algorithm in package echelon.
package combin

import (
	"errors"
	"fmt"
)

// ErrInvalidArgs is returned for n < 0, k < 0 or k > n.
var ErrInvalidArgs = errors.New("combin: invalid arguments")

// Generator yields every strictly increasing k-subset of [0,n).
// The number of subsets must equal Binomial(n, k).
type Generator func(n, k int) ([][]int, error)

// Combinations is the default Generator: subsets in lexicographic order.
//
//	Combinations(4, 2) → [0 1] [0 2] [0 3] [1 2] [1 3] [2 3]
func Combinations(n, k int) ([][]int, error) {
	if n < 0 || k < 0 || k > n {
		return nil, fmt.Errorf("Combinations(%d,%d): %w", n, k, ErrInvalidArgs)
	}
	total := Binomial(n, k)
	out := make([][]int, 0, total)
	if k == 0 {
		return append(out, []int{}), nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		cur := make([]int, k)
		copy(cur, idx)
		out = append(out, cur)

		// advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out, nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Binomial returns C(n,k), or 0 when k is outside [0,n].
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := 1
	for i := 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}

	return res
}

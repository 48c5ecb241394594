// SPDX-License-Identifier: MIT

// Package echelon implements row reduction on dense matrices: rank,
// row-echelon form and reduced row-echelon form.
//
// Every value whose magnitude is at most Epsilon is treated as zero and is
// scrubbed to an exact zero after each elimination step, so structural
// predicates such as IsRowEchelon are never defeated by floating noise.
// WithEpsilon replaces the threshold for a single call; pass the same
// option to the predicates when checking a result reduced with it.
//
// RowEchelon and ReducedRowEchelon return new matrices. The one mutating
// entry point is ReducedRowEchelonInPlace, which rewrites its *matrix.Dense
// argument.
//
// When a reduction finishes in a state that violates the row-echelon shape,
// the functions return ErrReductionInvariant instead of a malformed result.
package echelon

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// these sentinels with the operation tag via matrixErrorf; callers match with
// errors.Is regardless of wrapping depth.
//
// ERROR CLASSES:
//   - malformed input: ErrBadShape, ErrInvalidDimensions, ErrOutOfRange,
//     ErrDimensionMismatch, ErrNonSquare, ErrNilMatrix, ErrNaNInf.
//   - degeneracy: ErrDegenerate. Kept distinct from malformed input so that a
//     caller can switch strategy (e.g. Gauss-Jordan instead of Cramer).

var (
	// ErrBadShape is returned when rows are empty or ragged on construction.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDegenerate is returned when the determinant is exactly zero and the
	// operation (inverse, Cramer) needs a non-degenerate matrix.
	ErrDegenerate = errors.New("matrix: degenerate matrix")
)

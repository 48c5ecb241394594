// SPDX-License-Identifier: MIT

// Package matrix is the core of the engine: dense matrices and the
// elementary arithmetic everything else is built from.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows/Cols/At/Set/Clone), and Dense, its
//     row-major implementation backed by a flat slice.
//   - Arithmetic: Add, Sub, Mul, Scale, MatVec, Transpose.
//   - Determinant (1×1, 2×2, Sarrus, cofactor expansion), Minor, Cofactor,
//     CofactorMatrix, Adjugate and Inverse (adjugate method).
//   - Elementary row/column transforms returning new matrices, plus the
//     explicitly mutating (*Dense).…InPlace row operations.
//   - Validators and sentinel errors shared with the rest of the engine.
//
// Value semantics: every kernel returns a new matrix and never mutates its
// inputs. Only methods whose name ends in InPlace write into the receiver.
//
// Errors are sentinels (ErrDimensionMismatch, ErrNonSquare, ErrDegenerate, …)
// wrapped with the operation name; match them with errors.Is.
package matrix

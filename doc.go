// SPDX-License-Identifier: MIT

// Package lvlalg is a small dense linear-algebra engine for float64 matrices
// of modest size, built for exact-looking answers rather than speed.
//
// What is inside:
//
//	matrix/   Dense storage, arithmetic, Sarrus and cofactor determinants,
//	          minors, adjugate inverse, elementary row operations, Format
//	echelon/  row echelon and reduced row echelon forms, rank, pivots
//	linsys/   A·x = b by Cramer, adjugate or Gauss-Jordan, with
//	          zero / single / infinite classification and null-space bases
//	poly/     symbolic terms, bracket expansion, characteristic polynomials
//	roots/    closed-form roots up to the quartic (Cardano, Ferrari)
//	eigen/    eigenvalues and eigenvectors of matrices up to 4×4
//	vector/, combin/  the small helpers the packages above share
//
// The lvlalg command (cmd/lvlalg) exposes every operation on the command line
// and runs YAML job files concurrently.
//
// Quick example:
//
//	A := matrix.MustFromRows([][]float64{{2, 1, 1}, {1, 3, 1}, {1, 1, 5}})
//	s, _ := linsys.NewSystem(A, vector.Vector{2, 5, -7})
//	x, _ := linsys.Cramer(s) // [1 2 -2], det(A) = 22
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg

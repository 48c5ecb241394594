// SPDX-License-Identifier: MIT

// Package matrix - determinant, minors, cofactors and the adjugate inverse.
//
// Determinant dispatch (exact, no pivoting):
//
//	n == 1 → a
//	n == 2 → ad − bc
//	n == 3 → Sarrus
//	n >= 4 → cofactor expansion along row 0, skipping zero entries
//
// The same recursion is mirrored symbolically by poly.CharacteristicPolynomial,
// so the two must keep the same shape.
//
// Inverse is computed as adjugate/det (transpose of the cofactor matrix).
// It shares Cofactor/Determinant with the Cramer solver in package linsys.
package matrix

import "fmt"

// Determinant returns det(m).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(1) up to 3×3; O(n!) worst case beyond (zero entries prune).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(d), nil
}

// determinant assumes d is square and non-empty.
func determinant(d *Dense) float64 {
	a := d.data
	switch d.r {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	case 3:
		// Sarrus: three "down" diagonals minus three "up" diagonals.
		return a[0]*a[4]*a[8] + a[1]*a[5]*a[6] + a[2]*a[3]*a[7] -
			a[2]*a[4]*a[6] - a[0]*a[5]*a[7] - a[1]*a[3]*a[8]
	}

	var det float64
	sign := 1.0
	for j := 0; j < d.c; j++ {
		if a[j] != 0 {
			det += sign * a[j] * determinant(d.exclude(0, j))
		}
		sign = -sign
	}

	return det
}

// exclude returns the (r-1)×(c-1) copy of d without row i and column j (0-based).
// Assumes r,c >= 2 and indices in range.
func (m *Dense) exclude(row, col int) *Dense {
	out := &Dense{r: m.r - 1, c: m.c - 1, validateNaNInf: m.validateNaNInf}
	out.data = make([]float64, 0, out.r*out.c)
	for i := 0; i < m.r; i++ {
		if i == row {
			continue
		}
		base := i * m.c
		out.data = append(out.data, m.data[base:base+col]...)
		out.data = append(out.data, m.data[base+col+1:base+m.c]...)
	}

	return out
}

// Minor returns the submatrix of m without the given row and column.
// Indices are 1-based, matching the A_ij notation of cofactor expansion.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange for indices outside [1,Rows]×[1,Cols];
//     ErrBadShape when m has a single row or column (nothing would remain).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if row < 1 || row > m.Rows() || col < 1 || col > m.Cols() {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return nil, matrixErrorf(opMinor, ErrBadShape)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return d.exclude(row-1, col-1), nil
}

// Cofactor returns (-1)^(row+col) · det(Minor(m,row,col)), 1-based.
// For a 1×1 matrix the cofactor of its only element is 1.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
func Cofactor(m Matrix, row, col int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	n := m.Rows()
	if row < 1 || row > n || col < 1 || col > n {
		return 0, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	if n == 1 {
		return 1, nil
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactorSign(row+col) * determinant(d.exclude(row-1, col-1)), nil
}

func cofactorSign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// CofactorMatrix returns C with C[i,j] = Cofactor(m, i+1, j+1).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: n² determinants of size n−1.
func CofactorMatrix(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	n := d.r
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	if n == 1 {
		out.data[0] = 1
		return out, nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[i*n+j] = cofactorSign(i+j) * determinant(d.exclude(i, j))
		}
	}

	return out, nil
}

// Adjugate returns the transpose of the cofactor matrix.
func Adjugate(m Matrix) (*Dense, error) {
	c, err := CofactorMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	t, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return t.(*Dense), nil
}

// Inverse returns m⁻¹ = adj(m)/det(m).
//
// Implementation:
//   - Stage 1: validate square; compute det.
//   - Stage 2: det == 0 (exactly) → ErrDegenerate.
//   - Stage 3: scale the adjugate by 1/det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (malformed input).
//   - ErrDegenerate (zero determinant), distinct so callers can fall back.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det := determinant(d)
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrDegenerate)
	}
	adj, err := Adjugate(d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Scale(adj, 1/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// IsDegenerate reports det(m) == 0 for a square m.
func IsDegenerate(m Matrix) (bool, error) {
	det, err := Determinant(m)
	if err != nil {
		return false, err
	}

	return det == 0, nil
}

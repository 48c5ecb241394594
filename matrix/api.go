// SPDX-License-Identifier: MIT

// Short aliases and small compositions over the kernels.

package matrix

// NewIdentity returns the n×n identity.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = m·x.
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// Det is an alias for Determinant.
func Det(m Matrix) (float64, error) { return Determinant(m) }

// InverseOf is an alias for Inverse: returns A⁻¹ via the adjugate.
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }

// ShiftDiagonal returns m − λI for a square m; det(ShiftDiagonal(m, λ)) is
// the characteristic polynomial evaluated at λ.
func ShiftDiagonal(m Matrix, lambda float64) (Matrix, error) {
	I, err := IdentityLike(m)
	if err != nil {
		return nil, matrixErrorf("ShiftDiagonal", err)
	}
	lI, err := Scale(I, lambda)
	if err != nil {
		return nil, matrixErrorf("ShiftDiagonal", err)
	}

	return Sub(m, lI)
}

// Trace returns the sum of the diagonal of a square m.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf("Trace", err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf("Trace", err)
	}
	var tr float64
	for i := 0; i < d.r; i++ {
		tr += d.data[i*d.c+i]
	}

	return tr, nil
}

// SPDX-License-Identifier: MIT

// Package matrix - elementary row and column transforms.
// All functions here return a new matrix; indices are 0-based like At/Set.
// The mutating counterparts live on *Dense and carry an InPlace suffix.
package matrix

import "fmt"

// SwapRows returns a copy of m with rows i and j exchanged.
func SwapRows(m Matrix, i, j int) (*Dense, error) {
	out, err := cloneForTransform(opSwapRows, m)
	if err != nil {
		return nil, err
	}
	if err = out.SwapRowsInPlace(i, j); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}

	return out, nil
}

// ScaleRow returns a copy of m with row i multiplied by alpha.
func ScaleRow(m Matrix, i int, alpha float64) (*Dense, error) {
	out, err := cloneForTransform(opScaleRow, m)
	if err != nil {
		return nil, err
	}
	if err = out.ScaleRowInPlace(i, alpha); err != nil {
		return nil, matrixErrorf(opScaleRow, err)
	}

	return out, nil
}

// AddScaledRow returns a copy of m with row[dst] += alpha·row[src].
func AddScaledRow(m Matrix, dst, src int, alpha float64) (*Dense, error) {
	out, err := cloneForTransform(opAddRow, m)
	if err != nil {
		return nil, err
	}
	if err = out.AddScaledRowInPlace(dst, src, alpha); err != nil {
		return nil, matrixErrorf(opAddRow, err)
	}

	return out, nil
}

// SwapCols returns a copy of m with columns i and j exchanged.
func SwapCols(m Matrix, i, j int) (*Dense, error) {
	out, err := cloneForTransform(opSwapCols, m)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= out.c || j < 0 || j >= out.c {
		return nil, matrixErrorf(opSwapCols, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	for r := 0; r < out.r; r++ {
		base := r * out.c
		out.data[base+i], out.data[base+j] = out.data[base+j], out.data[base+i]
	}

	return out, nil
}

// ScaleCol returns a copy of m with column j multiplied by alpha.
func ScaleCol(m Matrix, j int, alpha float64) (*Dense, error) {
	out, err := cloneForTransform(opScaleCol, m)
	if err != nil {
		return nil, err
	}
	if j < 0 || j >= out.c {
		return nil, matrixErrorf(opScaleCol, fmt.Errorf("(%d): %w", j, ErrOutOfRange))
	}
	for r := 0; r < out.r; r++ {
		out.data[r*out.c+j] *= alpha
	}

	return out, nil
}

// AddScaledCol returns a copy of m with col[dst] += alpha·col[src].
func AddScaledCol(m Matrix, dst, src int, alpha float64) (*Dense, error) {
	out, err := cloneForTransform(opAddCol, m)
	if err != nil {
		return nil, err
	}
	if dst < 0 || dst >= out.c || src < 0 || src >= out.c {
		return nil, matrixErrorf(opAddCol, fmt.Errorf("(%d,%d): %w", dst, src, ErrOutOfRange))
	}
	for r := 0; r < out.r; r++ {
		base := r * out.c
		out.data[base+dst] += alpha * out.data[base+src]
	}

	return out, nil
}

// ReplaceCol returns a copy of m with column j replaced by v.
// Cramer's rule substitutes the right-hand side this way.
func ReplaceCol(m Matrix, j int, v []float64) (*Dense, error) {
	out, err := cloneForTransform("ReplaceCol", m)
	if err != nil {
		return nil, err
	}
	if j < 0 || j >= out.c {
		return nil, matrixErrorf("ReplaceCol", fmt.Errorf("(%d): %w", j, ErrOutOfRange))
	}
	if err = ValidateVecLen(v, out.r); err != nil {
		return nil, matrixErrorf("ReplaceCol", err)
	}
	for r := 0; r < out.r; r++ {
		out.data[r*out.c+j] = v[r]
	}

	return out, nil
}

func cloneForTransform(op string, m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	if d == m {
		d = d.clone()
	}

	return d, nil
}

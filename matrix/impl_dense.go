// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced) for minors.
//   - Host the only mutating row operations (…InPlace), used by the reduced
//     row-echelon reducer; every other kernel in the package is value-returning.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxInduce = "Induced"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxSwap   = "SwapRowsInPlace"
	ctxScale  = "ScaleRowInPlace"
	ctxAddRow = "AddScaledRowInPlace"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Returns an error formatted as "Dense.<method>(row,col): <err>" that still
// matches the sentinel through errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewFromRows builds a Dense from a slice of equal-length rows.
// The input is copied; later changes to rows do not affect the matrix.
//
// Errors:
//   - ErrBadShape when rows is empty, any row is empty, or rows are ragged.
//   - ErrNaNInf when a value is not finite (default numeric policy).
//
// Example:
//
//	A, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}})
func NewFromRows(rows [][]float64) (*Dense, error) {
	return NewFromRowsWith(rows)
}

// NewFromRowsWith is NewFromRows with explicit options (e.g. WithNoValidateNaNInf).
func NewFromRowsWith(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	d := &Dense{r: r, c: c, data: make([]float64, r*c), validateNaNInf: o.validateNaNInf}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape)
		}
		for j, v := range row {
			if d.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf("NewFromRows", i, j, ErrNaNInf)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// MustFromRows is NewFromRows that panics on error; intended for literals in
// tests and examples where the shape is known to be valid.
func MustFromRows(rows [][]float64) *Dense {
	d, err := NewFromRows(rows)
	if err != nil {
		panic(err)
	}

	return d
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols). Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows()==Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf maps (row,col) to a flat offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col). Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col), enforcing the NaN/Inf policy. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix. Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// RawRows returns a copy of the contents as a slice of rows.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	row := make([]float64, m.c)
	copy(row, m.data[i*m.c:(i+1)*m.c])

	return row, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	col := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = m.data[i*m.c+j]
	}

	return col, nil
}

// Equal reports exact element-wise equality with another Dense of the same shape.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: one bracketed row per line.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes the submatrix at the given row and column indices
// (0-based, any order, repeats allowed). The result is an independent copy.
//
// Errors:
//   - ErrBadShape when either index list is empty.
//   - ErrOutOfRange when an index is outside the base matrix.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	if rp == 0 || cp == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, ErrBadShape)
	}
	res := &Dense{r: rp, c: cp, data: make([]float64, rp*cp), validateNaNInf: m.validateNaNInf}

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// ---------- In-place row operations (explicitly mutating) ----------

// SwapRowsInPlace exchanges rows i and j of m.
func (m *Dense) SwapRowsInPlace(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := 0; k < m.c; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ScaleRowInPlace multiplies row i of m by alpha.
func (m *Dense) ScaleRowInPlace(i int, alpha float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxScale, i, 0, ErrOutOfRange)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] *= alpha
	}

	return nil
}

// AddScaledRowInPlace performs row[dst] += alpha·row[src].
func (m *Dense) AddScaledRowInPlace(dst, src int, alpha float64) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r {
		return denseErrorf(ctxAddRow, dst, src, ErrOutOfRange)
	}
	if alpha == 0 {
		return nil
	}
	d, s := m.data[dst*m.c:(dst+1)*m.c], m.data[src*m.c:(src+1)*m.c]
	for k := range d {
		d[k] += alpha * s[k]
	}

	return nil
}

// CleanInPlace sets every |x| <= eps to an exact zero.
func (m *Dense) CleanInPlace(eps float64) {
	for k, v := range m.data {
		if math.Abs(v) <= eps {
			m.data[k] = 0
		}
	}
}

// toDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At. Kernels use it to run a single flat-slice code path.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// AsDense returns m as a *Dense, copying through At when m has another
// concrete type. A *Dense input is returned as-is (no copy).
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("AsDense", err)
	}

	return d, nil
}

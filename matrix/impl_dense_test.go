// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m := mustDense(t, rows, cols)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	require.False(t, m.IsSquare())
}

func TestNewFromRows(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		err  error
	}{
		{"ok", [][]float64{{1, 2}, {3, 4}}, nil},
		{"empty", [][]float64{}, matrix.ErrBadShape},
		{"empty row", [][]float64{{}}, matrix.ErrBadShape},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrBadShape},
		{"nan", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{math.Inf(-1)}}, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewFromRows(tc.rows)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.RawRows())
		})
	}
}

func TestNewFromRowsCopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := mustRows(t, rows)
	rows[0][0] = 99
	require.Equal(t, 1.0, mustAt(t, m, 0, 0))
}

func TestNewFromRowsWithRelaxedPolicy(t *testing.T) {
	m, err := matrix.NewFromRowsWith([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(mustAt(t, m, 0, 0)))
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := mustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSetRejectsNonFinite(t *testing.T) {
	m := mustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	require.Equal(t, 1.0, mustAt(t, m, 0, 0))
	require.Equal(t, 3.0, mustAt(t, clone, 0, 0))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestRowColAccessors(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestInduced(t *testing.T) {
	m := mustRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	sub, err := m.Induced([]int{0, 2}, []int{2, 0})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 1}, {9, 7}}, sub.RawRows())

	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestInPlaceRowOps(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, m.SwapRowsInPlace(0, 1))
	require.Equal(t, [][]float64{{3, 4}, {1, 2}}, m.RawRows())

	require.NoError(t, m.ScaleRowInPlace(1, 2))
	require.Equal(t, [][]float64{{3, 4}, {2, 4}}, m.RawRows())

	require.NoError(t, m.AddScaledRowInPlace(0, 1, -1))
	require.Equal(t, [][]float64{{1, 0}, {2, 4}}, m.RawRows())

	require.ErrorIs(t, m.SwapRowsInPlace(0, 5), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.ScaleRowInPlace(-1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddScaledRowInPlace(2, 0, 1), matrix.ErrOutOfRange)
}

func TestCleanInPlace(t *testing.T) {
	m := mustRows(t, [][]float64{{1e-12, -1e-9}, {0.5, -3}})
	m.CleanInPlace(matrix.DefaultEpsilon)
	require.Equal(t, [][]float64{{0, 0}, {0.5, -3}}, m.RawRows())
}

func TestAsDense(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}})

	same, err := matrix.AsDense(m)
	require.NoError(t, err)
	require.Same(t, m, same)

	copied, err := matrix.AsDense(hide{m})
	require.NoError(t, err)
	require.NotSame(t, m, copied)
	require.True(t, m.Equal(copied))

	_, err = matrix.AsDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMustFromRowsPanics(t *testing.T) {
	require.Panics(t, func() { matrix.MustFromRows([][]float64{{1}, {1, 2}}) })
}

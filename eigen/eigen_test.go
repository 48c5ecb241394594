// SPDX-License-Identifier: MIT
package eigen_test

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlalg/eigen"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/roots"
	"github.com/katalvlaran/lvlalg/vector"
)

// EigenSuite runs the pipeline with a debug logger captured in buf.
type EigenSuite struct {
	suite.Suite
	buf bytes.Buffer
	p   *eigen.Pipeline
}

func (s *EigenSuite) SetupTest() {
	s.buf.Reset()
	s.p = eigen.New(eigen.WithLogger(zerolog.New(&s.buf).Level(zerolog.DebugLevel)))
}

func (s *EigenSuite) vectorsOf(rows [][]float64) []eigen.Eigenvector {
	evs, err := s.p.Eigenvectors(matrix.MustFromRows(rows))
	require.NoError(s.T(), err)

	return evs
}

// TestDiagonal checks values and vectors of diag(2,3).
func (s *EigenSuite) TestDiagonal() {
	m := matrix.MustFromRows([][]float64{{2, 0}, {0, 3}})

	rs, err := s.p.Eigenvalues(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), roots.Quadratic, rs.Kind)
	require.Equal(s.T(), []float64{3, 2}, rs.Reals())

	evs := s.vectorsOf([][]float64{{2, 0}, {0, 3}})
	require.Len(s.T(), evs, 2)
	require.Equal(s.T(), 3.0, evs[0].Value)
	require.True(s.T(), evs[0].Vector.EqualWithin(vector.Vector{0, 1}, 1e-12), "got %s", evs[0].Vector)
	require.Equal(s.T(), 2.0, evs[1].Value)
	require.True(s.T(), evs[1].Vector.EqualWithin(vector.Vector{1, 0}, 1e-12), "got %s", evs[1].Vector)

	require.Contains(s.T(), s.buf.String(), "characteristic equation")
	require.Contains(s.T(), s.buf.String(), "eigenspace")
}

// TestEigenpairs expects the values and vectors of the separate calls from a
// single characteristic equation.
func (s *EigenSuite) TestEigenpairs() {
	m := matrix.MustFromRows([][]float64{{2, 1, 0}, {1, 2, 1}, {0, 1, 2}})

	rs, evs, err := s.p.Eigenpairs(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, strings.Count(s.buf.String(), `"message":"characteristic equation"`))

	wantValues, err := s.p.Eigenvalues(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), wantValues.Kind, rs.Kind)
	require.Equal(s.T(), wantValues.Reals(), rs.Reals())
	wantVectors, err := s.p.Eigenvectors(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), wantVectors, evs)

	rot := matrix.MustFromRows([][]float64{{0, -1}, {1, 0}})
	rs, evs, err = s.p.Eigenpairs(rot)
	require.NoError(s.T(), err)
	require.Len(s.T(), rs.Values, 2)
	require.Empty(s.T(), evs)

	_, _, err = s.p.Eigenpairs(matrix.MustFromRows([][]float64{{1, 2, 3}}))
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)
}

// TestOneByOne is the degenerate linear case.
func (s *EigenSuite) TestOneByOne() {
	evs := s.vectorsOf([][]float64{{5}})
	require.Equal(s.T(), []eigen.Eigenvector{{Value: 5, Vector: vector.Vector{1}}}, evs)
}

// TestRepeatedEigenvalue expects a two-dimensional eigenspace for I₂.
func (s *EigenSuite) TestRepeatedEigenvalue() {
	evs := s.vectorsOf([][]float64{{1, 0}, {0, 1}})
	require.Len(s.T(), evs, 2)
	for _, ev := range evs {
		require.Equal(s.T(), 1.0, ev.Value)
	}
	require.True(s.T(), evs[0].Vector.EqualWithin(vector.Vector{1, 0}, 0))
	require.True(s.T(), evs[1].Vector.EqualWithin(vector.Vector{0, 1}, 0))
}

// TestComplexSkipped uses a rotation: both eigenvalues are ±i.
func (s *EigenSuite) TestComplexSkipped() {
	m := matrix.MustFromRows([][]float64{{0, -1}, {1, 0}})

	rs, err := s.p.Eigenvalues(m)
	require.NoError(s.T(), err)
	require.Len(s.T(), rs.Values, 2)
	require.Empty(s.T(), rs.Reals())

	evs, err := s.p.Eigenvectors(m)
	require.NoError(s.T(), err)
	require.Empty(s.T(), evs)
	require.Contains(s.T(), s.buf.String(), "skipped complex eigenvalue")
}

// TestMixedRealAndComplex keeps the single real eigenvalue of a 3D rotation.
func (s *EigenSuite) TestMixedRealAndComplex() {
	evs := s.vectorsOf([][]float64{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}})
	require.Len(s.T(), evs, 1)
	require.Equal(s.T(), 1.0, evs[0].Value)
	require.True(s.T(), evs[0].Vector.EqualWithin(vector.Vector{1, 0, 0}, 1e-12), "got %s", evs[0].Vector)
}

// TestEveryVectorChecks runs Check over the output for sizes 2..4.
func (s *EigenSuite) TestEveryVectorChecks() {
	for _, rows := range [][][]float64{
		{{2, 1}, {1, 3}},
		{{2, 1, 0}, {1, 2, 1}, {0, 1, 2}},
		{{4, 1, 0, 0}, {1, 4, 0, 0}, {0, 0, 2, 0}, {0, 0, 0, 7}},
	} {
		m := matrix.MustFromRows(rows)
		evs, err := s.p.Eigenvectors(m)
		require.NoError(s.T(), err)
		require.Len(s.T(), evs, len(rows))
		for _, ev := range evs {
			ok, err := s.p.Check(m, ev)
			require.NoError(s.T(), err)
			require.True(s.T(), ok, "%s", ev)
		}
	}
}

// TestQuarticValues checks the 4×4 path end to end.
func (s *EigenSuite) TestQuarticValues() {
	m := matrix.MustFromRows([][]float64{{4, 1, 0, 0}, {1, 4, 0, 0}, {0, 0, 2, 0}, {0, 0, 0, 7}})

	rs, err := s.p.Eigenvalues(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), roots.Quartic, rs.Kind)

	got := rs.Reals()
	sort.Float64s(got)
	require.Equal(s.T(), []float64{2, 3, 5, 7}, got)
}

// TestUnsupportedSize expects the quintic to be rejected.
func (s *EigenSuite) TestUnsupportedSize() {
	id, err := matrix.NewIdentity(5)
	require.NoError(s.T(), err)

	_, err = s.p.Eigenvalues(id)
	require.ErrorIs(s.T(), err, roots.ErrUnsupported)
	_, err = s.p.Eigenvectors(id)
	require.ErrorIs(s.T(), err, roots.ErrUnsupported)
}

// TestInvalidInput covers nil and non-square matrices.
func (s *EigenSuite) TestInvalidInput() {
	_, err := s.p.Eigenvalues(nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)

	_, err = s.p.Eigenvectors(matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)
}

// TestCheckRejects covers a wrong vector and the zero vector.
func (s *EigenSuite) TestCheckRejects() {
	m := matrix.MustFromRows([][]float64{{2, 0}, {0, 3}})

	ok, err := s.p.Check(m, eigen.Eigenvector{Value: 2, Vector: vector.Vector{1, 1}})
	require.NoError(s.T(), err)
	require.False(s.T(), ok)

	ok, err = s.p.Check(m, eigen.Eigenvector{Value: 2, Vector: vector.Vector{0, 0}})
	require.NoError(s.T(), err)
	require.False(s.T(), ok)

	_, err = s.p.Check(m, eigen.Eigenvector{Value: 2, Vector: vector.Vector{1, 0, 0}})
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
}

func TestEigenSuite(t *testing.T) {
	suite.Run(t, new(EigenSuite))
}

func TestCharacteristicEquationVariable(t *testing.T) {
	m := matrix.MustFromRows([][]float64{{2, 1}, {1, 3}})

	eq, err := eigen.CharacteristicEquation(m)
	require.NoError(t, err)
	require.Equal(t, "λ^2 - 5λ + 5", eq.Left.String())

	eq, err = eigen.New(eigen.WithVariable(poly.Var('t'))).CharacteristicEquation(m)
	require.NoError(t, err)
	require.Equal(t, "t^2 - 5t + 5", eq.Left.String())
}

func TestOptionsPanic(t *testing.T) {
	require.Panics(t, func() { eigen.WithEpsilon(-1) })
	require.Panics(t, func() { eigen.WithVariable(poly.Variable{}) })
	require.NotPanics(t, func() { eigen.New(nil, eigen.WithEpsilon(1e-6)) })
}

func TestPackageLevelDefaults(t *testing.T) {
	m := matrix.MustFromRows([][]float64{{2, 0}, {0, 3}})

	rs, err := eigen.Eigenvalues(m)
	require.NoError(t, err)
	require.Len(t, rs.Values, 2)

	evs, err := eigen.Eigenvectors(m)
	require.NoError(t, err)
	for _, ev := range evs {
		ok, err := eigen.Check(m, ev)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

// SPDX-License-Identifier: MIT

// Package vector provides the small set of fixed-length vector operations the
// engine needs when assembling homogeneous systems and reporting results:
// element-wise sum, scalar multiplication, dot product and comparisons.
//
// Every binary operation requires operands of equal length and fails with
// ErrLengthMismatch otherwise. Inputs are never mutated.
package vector

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrLengthMismatch is returned when two operands differ in length.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrEmpty is returned when a non-empty vector is required.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrOutOfRange is returned for an index outside [0, n).
	ErrOutOfRange = errors.New("vector: index out of range")
)

// Vector is an ordered, fixed-length sequence of reals.
type Vector []float64

// New returns a zero vector of length n.
func New(n int) (Vector, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}

	return make(Vector, n), nil
}

// Unit returns the i-th standard basis vector e_i of length n.
func Unit(n, i int) (Vector, error) {
	v, err := New(n)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("Unit(%d,%d): %w", n, i, ErrOutOfRange)
	}
	v[i] = 1

	return v, nil
}

func checkLen(op string, a, b Vector) error {
	if len(a) != len(b) {
		return fmt.Errorf("%s(%d,%d): %w", op, len(a), len(b), ErrLengthMismatch)
	}

	return nil
}

// Sum returns a + b.
func Sum(a, b Vector) (Vector, error) {
	if err := checkLen("Sum", a, b); err != nil {
		return nil, err
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// Sub returns a - b.
func Sub(a, b Vector) (Vector, error) {
	if err := checkLen("Sub", a, b); err != nil {
		return nil, err
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Scale returns c·v.
func Scale(v Vector, c float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x * c
	}

	return out
}

// Dot returns the inner product of a and b.
func Dot(a, b Vector) (float64, error) {
	if err := checkLen("Dot", a, b); err != nil {
		return 0, err
	}
	var acc float64
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc, nil
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Equal reports exact element-wise equality (no tolerance).
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}

	return true
}

// EqualWithin reports |v[i]-w[i]| <= eps for every i.
func (v Vector) EqualWithin(w Vector, eps float64) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-w[i]) > eps {
			return false
		}
	}

	return true
}

// Clean returns a copy of v with every |x| <= eps replaced by an exact zero.
// Negative zero is normalized as well.
func (v Vector) Clean(eps float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		if math.Abs(x) > eps {
			out[i] = x
		}
	}

	return out
}

// IsZero reports whether every component is within eps of zero.
func (v Vector) IsZero(eps float64) bool {
	for _, x := range v {
		if math.Abs(x) > eps {
			return false
		}
	}

	return true
}

// String renders v as "[a, b, c]" using the shortest float representation.
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(']')

	return b.String()
}

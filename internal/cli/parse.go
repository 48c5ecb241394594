// SPDX-License-Identifier: MIT

// Package cli implements the lvlalg command: argument parsing, YAML job
// files, the concurrent batch runner and the cobra command tree.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/vector"
)

// ParseMatrix reads a matrix literal: rows separated by ';', entries by ','
// or whitespace.
//
//	"1,2;3,4"  →  [[1 2] [3 4]]
func ParseMatrix(s string) (*matrix.Dense, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("ParseMatrix: empty input: %w", ErrParse)
	}
	parts := strings.Split(strings.TrimSuffix(s, ";"), ";")
	rows := make([][]float64, len(parts))
	for i, p := range parts {
		row, err := ParseVector(p)
		if err != nil {
			return nil, fmt.Errorf("ParseMatrix: row %d: %w", i, err)
		}
		rows[i] = row
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("ParseMatrix: %w", err)
	}

	return m, nil
}

// ParseVector reads comma or whitespace separated numbers.
func ParseVector(s string) (vector.Vector, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("ParseVector(%q): no values: %w", s, ErrParse)
	}
	out := make(vector.Vector, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("ParseVector(%q): %q: %w", s, f, ErrParse)
		}
		out[i] = x
	}

	return out, nil
}

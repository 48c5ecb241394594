// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operation names accepted by Runner.Run and by job files.
const (
	OpDet      = "det"
	OpInverse  = "inverse"
	OpRank     = "rank"
	OpREF      = "ref"
	OpRREF     = "rref"
	OpSolve    = "solve"
	OpCharPoly = "charpoly"
	OpEigen    = "eigen"
	OpRoots    = "roots"
)

// Job is one unit of work in a batch file.
//
//	- name: system
//	  op: solve
//	  matrix: [[2, 1, 1], [1, 3, 1], [1, 1, 5]]
//	  rhs: [2, 5, -7]
//	  method: cramer
type Job struct {
	Name   string      `yaml:"name"`
	Op     string      `yaml:"op"`
	Matrix [][]float64 `yaml:"matrix,omitempty"`
	RHS    []float64   `yaml:"rhs,omitempty"`
	Method string      `yaml:"method,omitempty"`
	Coefs  []float64   `yaml:"coefs,omitempty"`
}

// LoadJobs decodes a YAML sequence of jobs. Unknown fields are rejected.
func LoadJobs(r io.Reader) ([]Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var jobs []Job
	if err := dec.Decode(&jobs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("LoadJobs: empty document: %w", ErrParse)
		}
		return nil, fmt.Errorf("LoadJobs: %v: %w", err, ErrParse)
	}
	for i := range jobs {
		jobs[i].Op = strings.ToLower(strings.TrimSpace(jobs[i].Op))
		if jobs[i].Name == "" {
			jobs[i].Name = fmt.Sprintf("job-%d", i+1)
		}
	}

	return jobs, nil
}

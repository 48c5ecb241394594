// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvlalg/combin"
	"github.com/katalvlaran/lvlalg/internal/config"
	"github.com/katalvlaran/lvlalg/linsys"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/roots"
	"github.com/katalvlaran/lvlalg/vector"
)

// Process exit codes.
const (
	ExitSuccess          = 0   // Command completed.
	ExitErrorGeneric     = 1   // Anything not classified below.
	ExitErrorInput       = 2   // Malformed matrix, vector, job file or configuration.
	ExitErrorDegenerate  = 3   // Singular matrix where an inverse was required.
	ExitErrorUnsupported = 4   // Equation degree above four.
	ExitErrorCanceled    = 130 // Interrupted.
)

var (
	// ErrParse is returned for text that is not a matrix or vector literal.
	ErrParse = errors.New("cli: parse error")

	// ErrUnknownOp is returned for a job whose op is not recognized.
	ErrUnknownOp = errors.New("cli: unknown operation")

	// ErrMissingInput is returned when an op lacks a required field.
	ErrMissingInput = errors.New("cli: missing input")
)

var inputErrors = []error{
	ErrParse, ErrUnknownOp, ErrMissingInput,
	config.ErrInvalidConfig,
	matrix.ErrBadShape, matrix.ErrInvalidDimensions, matrix.ErrDimensionMismatch,
	matrix.ErrNonSquare, matrix.ErrNilMatrix, matrix.ErrOutOfRange, matrix.ErrNaNInf,
	vector.ErrLengthMismatch, vector.ErrEmpty,
	combin.ErrInvalidArgs,
	linsys.ErrNonLinear, linsys.ErrUnknownVariable, linsys.ErrUnknownMethod,
	poly.ErrMixedVariables, poly.ErrNoVariable,
	roots.ErrTermCount, roots.ErrLeadingZero, roots.ErrInvalidPower,
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, matrix.ErrDegenerate):
		return ExitErrorDegenerate
	case errors.Is(err, roots.ErrUnsupported):
		return ExitErrorUnsupported
	}
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return ExitErrorInput
		}
	}

	return ExitErrorGeneric
}

// HandleError prints err to out and returns its exit code.
func HandleError(err error, out io.Writer) int {
	code := ExitCode(err)
	switch code {
	case ExitSuccess:
	case ExitErrorCanceled:
		fmt.Fprintln(out, "Status: Canceled.")
	case ExitErrorDegenerate:
		fmt.Fprintf(out, "Status: Failure (degenerate matrix). Try solve --method gauss-jordan: %v\n", err)
	case ExitErrorUnsupported:
		fmt.Fprintf(out, "Status: Failure (unsupported). %v\n", err)
	case ExitErrorInput:
		fmt.Fprintf(out, "Status: Failure (invalid input). %v\n", err)
	default:
		fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	}

	return code
}

// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/internal/config"
	"github.com/katalvlaran/lvlalg/internal/logging"
)

// app carries state shared by the commands of one invocation.
type app struct {
	out, errOut io.Writer
	cfgPath     string
	runner      Runner
}

// NewRootCommand builds the lvlalg command tree writing results to out and
// logs and diagnostics to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	v := config.NewViper()
	d := config.Default()

	root := &cobra.Command{
		Use:   "lvlalg",
		Short: "Exact-ish linear algebra on small dense matrices",
		Long: `lvlalg computes determinants, inverses, ranks, echelon forms, solutions of
linear systems, characteristic polynomials, eigenpairs and roots of
polynomials up to degree four.

Matrices are written inline with ';' between rows and ',' between entries:

  lvlalg det "2,1,1;1,3,1;1,1,5"
  lvlalg solve "2,1,1;1,3,1;1,1,5" --rhs 2,5,-7 --method cramer
  lvlalg roots 1,7,12`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, a.cfgPath)
			if err != nil {
				return err
			}
			log, err := logging.New(a.errOut, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return fmt.Errorf("%v: %w", err, config.ErrInvalidConfig)
			}
			a.runner = NewRunner(cfg, logging.Component(log, cmd.Name()))

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%v: %w", err, ErrParse)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.Float64("epsilon", d.Epsilon, "magnitudes at or below this count as zero")
	pf.Int("precision", d.Precision, "decimals in printed results")
	pf.String("log-level", d.LogLevel, "debug, info, warn, error or disabled")
	pf.String("log-format", d.LogFormat, "console or json")
	pf.Int("workers", d.Workers, "concurrent jobs in batch mode")
	for key, flag := range map[string]string{
		config.KeyEpsilon:   "epsilon",
		config.KeyPrecision: "precision",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
		config.KeyWorkers:   "workers",
	} {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}

	for _, spec := range []struct{ op, short string }{
		{OpDet, "Determinant"},
		{OpInverse, "Inverse via the adjugate"},
		{OpRank, "Rank"},
		{OpREF, "Row echelon form"},
		{OpRREF, "Reduced row echelon form"},
		{OpCharPoly, "Characteristic polynomial det(A − λI)"},
		{OpEigen, "Real eigenvalues and eigenvectors (up to 4×4)"},
	} {
		root.AddCommand(a.matrixCommand(spec.op, spec.short))
	}
	solve := a.solveCommand()
	_ = v.BindPFlag(config.KeyMethod, solve.Flags().Lookup("method"))
	root.AddCommand(solve, a.rootsCommand(), a.batchCommand())

	return root
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%s: want %d argument(s), got %d: %w", cmd.Name(), n, len(args), ErrMissingInput)
		}
		return nil
	}
}

func (a *app) print(job Job) error {
	out, err := a.runner.Run(job)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, out)

	return nil
}

func (a *app) matrixCommand(op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " MATRIX",
		Short: short,
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := ParseMatrix(args[0])
			if err != nil {
				return err
			}
			return a.print(Job{Name: op, Op: op, Matrix: m.RawRows()})
		},
	}
}

func (a *app) solveCommand() *cobra.Command {
	var rhs string
	cmd := &cobra.Command{
		Use:   "solve MATRIX --rhs B",
		Short: "Solve A·x = b",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := ParseMatrix(args[0])
			if err != nil {
				return err
			}
			if rhs == "" {
				return fmt.Errorf("solve: --rhs is required: %w", ErrMissingInput)
			}
			b, err := ParseVector(rhs)
			if err != nil {
				return err
			}
			return a.print(Job{Name: OpSolve, Op: OpSolve, Matrix: m.RawRows(), RHS: b})
		},
	}
	cmd.Flags().StringVar(&rhs, "rhs", "", "right-hand side, comma separated")
	cmd.Flags().String("method", config.Default().Method, "gauss-jordan, cramer or adjugate")

	return cmd
}

func (a *app) rootsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roots COEFS",
		Short: "Roots of a polynomial given highest power first (degree 1..4)",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := ParseVector(args[0])
			if err != nil {
				return err
			}
			return a.print(Job{Name: OpRoots, Op: OpRoots, Coefs: c})
		},
	}
}

func (a *app) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch JOBS.yaml",
		Short: "Run a YAML list of jobs concurrently; results print in file order",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("batch: %v: %w", err, ErrMissingInput)
			}
			defer f.Close()

			jobs, err := LoadJobs(f)
			if err != nil {
				return err
			}
			results, err := RunBatch(cmd.Context(), a.runner, jobs)
			if err != nil {
				return err
			}

			return WriteResults(a.out, results)
		},
	}
}

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)

	return HandleError(err, errOut)
}

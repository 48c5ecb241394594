// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one job; Err is per job and does not stop the batch.
type Result struct {
	Job      Job
	Output   string
	Err      error
	Duration time.Duration
}

// RunBatch runs jobs concurrently, at most Config.Workers at a time, and
// returns results in input order. The returned error is non-nil only when
// ctx is canceled; jobs that never started carry ctx's error.
func RunBatch(ctx context.Context, r Runner, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	workers := r.Config.Workers
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		i, job := i, job
		results[i].Job = job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			start := time.Now()
			out, err := r.Run(job)
			results[i] = Result{Job: job, Output: out, Err: err, Duration: time.Since(start)}
			r.Log.Debug().Str("job", job.Name).Str("op", job.Op).Dur("took", results[i].Duration).Err(err).Msg("job done")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

// WriteResults prints every result under a header line and returns the job
// errors joined, or nil when all succeeded.
func WriteResults(w io.Writer, results []Result) error {
	var errs []error
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s (%s) ==\n", res.Job.Name, res.Job.Op)
		if res.Err != nil {
			fmt.Fprintf(w, "error: %v\n", res.Err)
			errs = append(errs, res.Err)
			continue
		}
		fmt.Fprintln(w, res.Output)
	}

	return errors.Join(errs...)
}

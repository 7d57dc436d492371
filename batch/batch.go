package batch

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tsawler/mlca/model"
	"github.com/tsawler/mlca/rtplan"
)

// Result is the outcome of analyzing one file: either a plan or the
// reason it failed.
type Result struct {
	Path string
	Plan *model.Plan
	Err  error
}

// OK reports whether the file produced a plan.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report collects the results of one batch run.
type Report struct {
	// RunID uniquely identifies this run.
	RunID    string
	Started  time.Time
	Finished time.Time
	// Results holds one entry per input file, in completion order.
	Results []Result
}

// FileCount returns the number of files processed.
func (r *Report) FileCount() int {
	return len(r.Results)
}

// PlanCount returns the number of files that produced a valid plan.
func (r *Report) PlanCount() int {
	var n int
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// FailureCount returns the number of files that failed.
func (r *Report) FailureCount() int {
	return len(r.Results) - r.PlanCount()
}

// Rows returns the summary rows of every successfully analyzed plan.
// Rows within a plan keep their fraction-group order.
func (r *Report) Rows() []model.SummaryRow {
	var rows []model.SummaryRow
	for _, res := range r.Results {
		if res.OK() {
			rows = append(rows, res.Plan.Summary()...)
		}
	}
	return rows
}

// Config controls a batch run.
type Config struct {
	// Workers is the number of files analyzed in parallel. Values below 1
	// mean 1.
	Workers int
	// Options are the analysis options applied to every plan.
	Options model.Options
	// Logger receives per-file progress and failure traces. Nil discards
	// them.
	Logger *log.Logger
}

// Run analyzes every path and collects the results. Each file is an
// independent task; a failure is recorded and the remainder continues.
// Cancelling ctx stops feeding new files but lets in-flight analyses
// finish.
func Run(ctx context.Context, paths []string, cfg Config) *Report {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
	}

	jobs := make(chan string)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				plan, err := rtplan.ReadFile(path, cfg.Options)
				results <- Result{Path: path, Plan: plan, Err: err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	total := len(paths)
	for res := range results {
		report.Results = append(report.Results, res)
		if res.OK() {
			logger.Printf("analyzed (%d of %d): %s", len(report.Results), total, res.Path)
		} else {
			logger.Printf("failed (%d of %d): %s: %v", len(report.Results), total, res.Path, res.Err)
		}
	}

	report.Finished = time.Now()
	return report
}

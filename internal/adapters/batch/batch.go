// Package batch evaluates several dataset files concurrently.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/okian/opsboard/internal/adapters/dataset"
	"github.com/okian/opsboard/internal/domain/model"
	"github.com/okian/opsboard/internal/domain/types"
	"github.com/okian/opsboard/pkg/logger"
)

// Evaluator produces a report for one dataset.
type Evaluator interface {
	Evaluate(ctx context.Context, ds model.Dataset) (*types.Report, error)
}

// Loader reads the dataset at path.
type Loader func(ctx context.Context, path string) (model.Dataset, error)

// Result is the outcome for one input path. Exactly one of Report and Err
// is set.
type Result struct {
	Path   string
	Report *types.Report
	Err    error
}

// Pool runs a fixed number of workers over a list of dataset paths.
type Pool struct {
	eval    Evaluator
	load    Loader
	workers int
	logger  logger.Logger
}

// NewPool creates a pool evaluating with eval.
func NewPool(eval Evaluator, opts ...Option) *Pool {
	p := &Pool{
		eval:    eval,
		load:    dataset.Load,
		workers: runtime.NumCPU(),
		logger:  logger.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

type job struct {
	index int
	path  string
}

// Run evaluates every path and returns results in input order. A failing
// path does not stop the others; once ctx is done the remaining paths fail
// with its error.
func (p *Pool) Run(ctx context.Context, paths []string) []Result {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results
	}

	workers := min(p.workers, len(paths))
	jobs := make(chan job)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			log := p.logger.Named(name)
			for j := range jobs {
				results[j.index] = p.process(ctx, log, j.path)
			}
		}(fmt.Sprintf("worker-%d", i))
	}

	for i, path := range paths {
		select {
		case <-ctx.Done():
			results[i] = Result{Path: path, Err: ctx.Err()}
		case jobs <- job{index: i, path: path}:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (p *Pool) process(ctx context.Context, log logger.Logger, path string) Result {
	if err := ctx.Err(); err != nil {
		return Result{Path: path, Err: err}
	}
	ds, err := p.load(ctx, path)
	if err != nil {
		log.Error(ctx, "dataset load failed", logger.String("path", path), logger.Error(err))
		return Result{Path: path, Err: err}
	}
	r, err := p.eval.Evaluate(ctx, ds)
	if err != nil {
		log.Error(ctx, "evaluation failed", logger.String("path", path), logger.Error(err))
		return Result{Path: path, Err: err}
	}
	log.Debug(ctx, "dataset evaluated",
		logger.String("path", path),
		logger.String("run_id", r.RunID),
	)
	return Result{Path: path, Report: r}
}

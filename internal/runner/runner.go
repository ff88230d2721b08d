// Package runner evaluates batches of codes on one shared chain.
package runner

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/go-ricrob/keypadsolver/internal/ctxlog"
	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/solver"
)

const numCh = 100

// Runner evaluates codes concurrently on a chain.
type Runner struct {
	chain     *solver.Chain
	numWorker int
}

// Option configures a Runner.
type Option func(r *Runner)

// WithWorkers sets the number of concurrent workers (at least 1).
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.numWorker = n
		}
	}
}

// New returns a Runner on chain using one worker per CPU by default.
func New(chain *solver.Chain, opts ...Option) *Runner {
	r := &Runner{chain: chain, numWorker: runtime.NumCPU()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type job struct {
	idx  int
	code []keypad.Button
}

func (r *Runner) worker(ctx context.Context, result *Result, wg *sync.WaitGroup, jobCh <-chan job) {
	defer wg.Done()

	logger := ctxlog.FromContext(ctx)
	for job := range jobCh {
		entry := &result.Entries[job.idx]
		entry.Cost, entry.Err = r.chain.TotalCost(job.code)
		if entry.Err != nil {
			logger.Warn("Code evaluation failed.", "code", entry.Code, "error", entry.Err)
			continue
		}
		entry.Complexity = entry.Value * entry.Cost
		logger.Debug("Code evaluated.", "code", entry.Code, "cost", entry.Cost, "value", entry.Value)
	}
}

// Run evaluates codes and returns the results in input order. Failing codes
// are recorded in their entry and do not stop the others. Run stops handing
// out codes once ctx is done and returns the context error.
func (r *Runner) Run(ctx context.Context, codes [][]keypad.Button) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	result := newResult(r.chain.Depth(), codes)

	numWorker := min(r.numWorker, max(len(codes), 1))
	wg := new(sync.WaitGroup)
	wg.Add(numWorker)
	jobCh := make(chan job, numCh)
	for i := 0; i < numWorker; i++ {
		go r.worker(ctx, result, wg, jobCh)
	}

	var err error
	for i, code := range codes {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			goto done
		case jobCh <- job{idx: i, code: code}:
		}
	}
done:
	close(jobCh)
	wg.Wait()

	if err != nil {
		return nil, err
	}

	logger.Info("Codes evaluated.",
		"depth", result.Depth,
		"codes", len(codes),
		"failed", result.NumFailed(),
		"cached_moves", r.chain.CacheSize(),
		"duration", time.Since(start),
	)
	return result, nil
}

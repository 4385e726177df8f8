package montecarlo

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/percolation/percolation"
)

// Run performs trials independent experiments on an n×n grid and summarizes
// their thresholds.
//
// Errors:
//   - percolation.ErrInvalidSize if n ≤ 0.
//   - ErrInvalidTrials if trials < 1.
//   - ErrInvalidWorkers if the Workers option is < 1.
//
// Trial i always draws from the stream derived from (Seed, i), so the
// result does not depend on Workers.
func Run(n, trials int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if n <= 0 {
		return nil, fmt.Errorf("Run(n=%d): %w", n, percolation.ErrInvalidSize)
	}
	if trials < 1 {
		return nil, fmt.Errorf("Run(trials=%d): %w", trials, ErrInvalidTrials)
	}
	if o.Workers < 1 {
		return nil, fmt.Errorf("Run(workers=%d): %w", o.Workers, ErrInvalidWorkers)
	}

	thresholds := make([]float64, trials)
	errs := make([]error, trials)

	workers := o.Workers
	if workers > trials {
		workers = trials
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				thresholds[i], errs[i] = Trial(n, trialRNG(o.Seed, i))
			}
		}()
	}
	for i := 0; i < trials; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
	}

	return &Result{
		N:          n,
		Trials:     trials,
		Thresholds: thresholds,
		Summary:    Summarize(thresholds),
	}, nil
}

// Trial runs one experiment on a fresh n×n grid: it opens uniformly random
// blocked sites drawn from src until the grid percolates and returns the
// fraction of open sites at that moment.
//
// Errors:
//   - ErrNilSource if src is nil.
//   - percolation.ErrInvalidSize if n ≤ 0.
//   - percolation.ErrOutOfRange if src returns a value outside [0, n).
func Trial(n int, src Source) (float64, error) {
	if src == nil {
		return 0, ErrNilSource
	}
	g, err := percolation.New(n)
	if err != nil {
		return 0, err
	}

	for !g.Percolates() {
		row, col := src.Intn(n)+1, src.Intn(n)+1
		open, err := g.IsOpen(row, col)
		if err != nil {
			return 0, err
		}
		if open {
			continue
		}
		if err = g.Open(row, col); err != nil {
			return 0, err
		}
	}

	return g.OpenFraction(), nil
}

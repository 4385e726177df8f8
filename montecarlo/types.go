// Package montecarlo defines options, results and sentinel errors for
// percolation-threshold estimation.
package montecarlo

import "errors"

// Sentinel errors for montecarlo operations. An invalid grid size is
// reported as percolation.ErrInvalidSize.
var (
	// ErrInvalidTrials indicates a trial count below 1.
	ErrInvalidTrials = errors.New("montecarlo: trial count must be at least 1")
	// ErrInvalidWorkers indicates a worker count below 1.
	ErrInvalidWorkers = errors.New("montecarlo: worker count must be at least 1")
	// ErrNilSource indicates Trial was called without a random source.
	ErrNilSource = errors.New("montecarlo: nil random source")
)

// confidenceZ is the two-sided 95% normal quantile.
const confidenceZ = 1.96

// Source draws uniform integers. Intn(k) must return a value in [0, k) for k ≥ 1.
// *rand.Rand satisfies Source. Implementations need not be goroutine-safe:
// each trial uses its own Source.
type Source interface {
	Intn(k int) int
}

// Options configures Run.
//
// Fields:
//
//	Seed    int64 — base seed for per-trial RNG streams; 0 selects a fixed default.
//	Workers int   — number of trials run concurrently; must be ≥ 1.
type Options struct {
	Seed    int64
	Workers int
}

// Option configures Options.
type Option func(*Options)

// WithSeed returns an Option that sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers returns an Option that sets the number of concurrent workers.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}

// DefaultOptions returns Options with Seed=0 (default stream) and Workers=1.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Workers: 1,
	}
}

// Summary holds the statistics derived from a sample of thresholds.
type Summary struct {
	Mean         float64
	StdDev       float64
	ConfidenceLo float64
	ConfidenceHi float64
	Min          float64
	Max          float64
}

// Result is the outcome of Run. Thresholds[i] is the threshold of trial i.
type Result struct {
	N          int
	Trials     int
	Thresholds []float64
	Summary
}

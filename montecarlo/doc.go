// Package montecarlo estimates the site-percolation threshold of an N×N grid
// by running independent random trials.
//
// 🚀 What is a trial?
//
//	Start from a fully blocked percolation.Grid, open uniformly random
//	blocked sites one at a time, and stop at the first open that makes the
//	grid percolate. The trial's threshold is openSites / N².
//
// ✨ Key features:
//   - deterministic: the same Seed gives the same thresholds, whatever the
//     worker count (each trial draws from its own RNG stream derived from
//     Seed and the trial index)
//   - parallel: Options.Workers trials run concurrently, each on its own Grid
//   - summary statistics via gonum/stat: sample mean, sample standard
//     deviation and the 95% confidence interval μ ± 1.96·σ/√T
//
// ⚙️ Usage:
//
//	res, err := montecarlo.Run(200, 100,
//	    montecarlo.WithSeed(42),
//	    montecarlo.WithWorkers(4),
//	)
//	if err != nil {
//	    // handle percolation.ErrInvalidSize or ErrInvalidTrials
//	}
//	fmt.Println(res.Mean, res.StdDev, res.ConfidenceLo, res.ConfidenceHi)
//
// Performance:
//
//   - Time:   O(T·N²·α(N²)) expected (each trial opens ≈0.593·N² sites).
//   - Memory: O(Workers·N² + T).
//
// Statistics:
//
//   - StdDev uses the n-1 denominator; with fewer than two samples it and
//     both confidence bounds are NaN.
package montecarlo

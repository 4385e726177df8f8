// Command percolationstats estimates the site-percolation threshold of an
// N×N grid from T independent Monte-Carlo trials.
//
// Usage:
//
//	percolationstats [-seed S] [-workers W] [-v] N T
//
// Output:
//
//	mean                    = <μ>
//	stddev                  = <σ>
//	95% confidence interval = [<lo>, <hi>]
//
// The exit code is 0 on success (including -h) and 1 on bad arguments or a
// failed run.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/percolation/montecarlo"
)

var log = logrus.New()

// errUsage reports a wrong number of positional arguments.
var errUsage = errors.New("usage: percolationstats [-seed S] [-workers W] [-v] N T")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Error("percolationstats failed")
		os.Exit(1)
	}
}

// run parses args, executes the trials and writes the summary to stdout.
// Flag diagnostics and log records go to stderr.
// A -h request is returned as flag.ErrHelp after the usage is printed.
func run(args []string, stdout, stderr io.Writer) error {
	log.SetOutput(stderr)
	fs := flag.NewFlagSet("percolationstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", time.Now().UnixNano(), "base seed for the per-trial random streams")
	workers := fs.Int("workers", 1, "number of trials run concurrently")
	verbose := fs.Bool("v", false, "log run parameters and timing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errUsage
	}
	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parse N %q: %w", fs.Arg(0), err)
	}
	trials, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("parse T %q: %w", fs.Arg(1), err)
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	fields := logrus.Fields{"n": n, "trials": trials, "workers": *workers, "seed": *seed}
	log.WithFields(fields).Debug("starting trials")
	start := time.Now()

	res, err := montecarlo.Run(n, trials, montecarlo.WithSeed(*seed), montecarlo.WithWorkers(*workers))
	if err != nil {
		return err
	}
	log.WithFields(fields).WithField("elapsed", time.Since(start)).Debug("trials finished")

	fmt.Fprintf(stdout, "mean                    = %v\n", res.Mean)
	fmt.Fprintf(stdout, "stddev                  = %v\n", res.StdDev)
	fmt.Fprintf(stdout, "95%% confidence interval = [%v, %v]\n", res.ConfidenceLo, res.ConfidenceHi)

	return nil
}

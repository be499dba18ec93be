package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/slide/internal/parallel"
	"github.com/born-ml/slide/internal/rng"
	"github.com/born-ml/slide/kernel"
)

type cycleResult struct {
	inputs  []float32
	outputs []float32
	err     float32
}

func runCycles(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(w)
	inputsFlag := fs.String("inputs", "1,1,1,1", "Comma-separated input segment values")
	targetsFlag := fs.String("targets", "0.5,-0.1", "Comma-separated targets, one per output")
	capacity := fs.Int("capacity", kernel.DefaultCapacity, "Buffer capacity")
	random := fs.Bool("random", false, "Fill the input segment from the seeded generator")
	scale := fs.Float64("scale", 0.01, "Random inputs are drawn from [-scale, scale)")
	seed := fs.Int64("seed", rng.DefaultConfig().Seed, "Generator seed (-1 = from the OS)")
	runs := fs.Int("runs", 1, "Number of independent cycles")
	workers := fs.Int("workers", 0, "Worker goroutines (0 = one per CPU)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	inputs, err := parseFloats(*inputsFlag)
	if err != nil {
		return fmt.Errorf("inputs: %w", err)
	}
	targets, err := parseFloats(*targetsFlag)
	if err != nil {
		return fmt.Errorf("targets: %w", err)
	}
	if *runs < 1 {
		return fmt.Errorf("runs must be positive, got %d", *runs)
	}

	l, err := kernel.NewLayout(len(inputs), len(targets), *capacity)
	if err != nil {
		return err
	}

	results := parallel.Map(*runs, func(i int) cycleResult {
		return runOne(l, inputs, targets, *random, float32(*scale), rng.Config{Seed: *seed, Stream: uint64(i)})
	}, workerConfig(*workers))

	fmt.Fprintf(w, "layout: inputs=%d hidden=%d outputs=%d capacity=%d\n",
		l.Inputs, l.Hidden(), l.Outputs, l.Capacity)

	errs := make([]float64, len(results))
	for i, r := range results {
		errs[i] = float64(r.err)
		if *random {
			fmt.Fprintf(w, "run %d: inputs=%v\n", i, r.inputs)
		}
		out := toFloat64(r.outputs)
		fmt.Fprintf(w, "run %d: outputs=%v error=%g\n", i, r.outputs, r.err)
		fmt.Fprintf(w, "run %d: output sum=%g min=%g max=%g\n", i, floats.Sum(out), floats.Min(out), floats.Max(out))
	}
	if len(errs) > 1 {
		fmt.Fprintf(w, "mean error over %d runs: %g\n", len(errs), floats.Sum(errs)/float64(len(errs)))
	}
	return nil
}

// workerConfig maps the -workers flag to a parallel.Config. 0 keeps one
// worker per CPU and 1 runs every cycle on the calling goroutine.
func workerConfig(n int) parallel.Config {
	switch {
	case n == 1:
		return parallel.Sequential()
	case n > 1:
		cfg := parallel.DefaultConfig()
		cfg.Enabled = true
		cfg.NumWorkers = n
		return cfg
	}
	return parallel.DefaultConfig()
}

// runOne executes a single cycle on its own buffer and random stream.
func runOne(l kernel.Layout, inputs, targets []float32, random bool, scale float32, cfg rng.Config) cycleResult {
	c, err := kernel.NewCycle(l, targets)
	if err != nil {
		panic(fmt.Sprintf("run: %v", err))
	}

	in := append([]float32(nil), inputs...)
	if random {
		rng.Uniform(rng.New(cfg), in, -scale, scale)
	}
	if err := c.Load(in); err != nil {
		panic(fmt.Sprintf("run: %v", err))
	}

	e := c.Run()
	return cycleResult{
		inputs:  in,
		outputs: append([]float32(nil), c.Outputs()...),
		err:     e,
	}
}

func parseFloats(s string) ([]float32, error) {
	fields := strings.Split(s, ",")
	out := make([]float32, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		out = append(out, float32(v))
	}
	if len(out) == 0 {
		return nil, errors.New("no values")
	}
	return out, nil
}

func toFloat64(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

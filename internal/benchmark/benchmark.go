// Package benchmark wraps the pricing engine in a repeated-invocation
// harness that reports wall-clock statistics. It consumes only the engine's
// public Simulate call; the engine has no knowledge of it.
package benchmark

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/optmc/option-pricer/internal/domain"
	"github.com/optmc/option-pricer/internal/simulation"
)

// Runner invokes the engine a fixed number of times against one parameter
// set and collects per-run timings.
type Runner struct {
	Engine     *simulation.Engine
	Iterations int
}

// NewRunner creates a benchmark runner. Iterations below 1 are treated as 1.
func NewRunner(engine *simulation.Engine, iterations int) *Runner {
	if iterations < 1 {
		iterations = 1
	}
	return &Runner{Engine: engine, Iterations: iterations}
}

// RunRecord captures a single benchmark iteration.
type RunRecord struct {
	Iteration       int                       `json:"iteration"`
	ExecutionTimeMs float64                   `json:"executionTimeMs"`
	OptionPrice     float64                   `json:"optionPrice"`
	Confidence      domain.ConfidenceInterval `json:"confidence"`
}

// Summary aggregates wall-clock statistics across all iterations.
type Summary struct {
	Runs     []RunRecord `json:"runs"`
	MinMs    float64     `json:"minMs"`
	MaxMs    float64     `json:"maxMs"`
	MeanMs   float64     `json:"meanMs"`
	MedianMs float64     `json:"medianMs"`
}

// Run executes the configured number of pricing invocations and summarizes
// their timings. The first failing iteration aborts the run.
func (r *Runner) Run(ctx context.Context, params *domain.Parameters) (*Summary, error) {
	runs := make([]RunRecord, 0, r.Iterations)
	times := make([]float64, 0, r.Iterations)

	for i := 0; i < r.Iterations; i++ {
		start := time.Now()
		result, err := r.Engine.Simulate(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("benchmark iteration %d: %w", i+1, err)
		}
		ms := float64(time.Since(start).Microseconds()) / 1000.0

		runs = append(runs, RunRecord{
			Iteration:       i + 1,
			ExecutionTimeMs: ms,
			OptionPrice:     result.OptionPrice,
			Confidence:      result.Confidence,
		})
		times = append(times, ms)
	}

	sort.Float64s(times)
	return &Summary{
		Runs:     runs,
		MinMs:    times[0],
		MaxMs:    times[len(times)-1],
		MeanMs:   stat.Mean(times, nil),
		MedianMs: stat.Quantile(0.5, stat.Empirical, times, nil),
	}, nil
}

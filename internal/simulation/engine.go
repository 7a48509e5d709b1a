package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/optmc/option-pricer/internal/domain"
)

// Engine prices European options by Monte Carlo simulation. It is the sole
// entry point for callers; everything below it trusts the validation done
// here.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Simulate validates params, splits the trials across workers, runs every
// worker to completion and reduces their summaries into one result.
//
// Each worker owns a private generator seeded from the invocation's base
// seed mixed with its index, accumulates into private sums and publishes a
// single summary into its own slot. The slots are read only after every
// worker has been joined, so the whole invocation needs no locks. The
// reduction itself is order-independent; with a pinned Parameters.Seed and
// explicit worker count the result is bit-reproducible.
func (e *Engine) Simulate(ctx context.Context, params *domain.Parameters) (*domain.PricingResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workers := resolveWorkerCount(params.WorkerCount, params.NumTrials)
	ranges := partitionTrials(params.NumTrials, workers)

	baseSeed := params.Seed
	if baseSeed == 0 {
		baseSeed = seedFunc()
	}
	e.Logger.Debugf("simulate: trials=%d workers=%d seed=%d", params.NumTrials, workers, baseSeed)

	start := time.Now()
	partials := make([]partialStats, workers)
	var wg sync.WaitGroup
	for i, r := range ranges {
		wg.Add(1)
		go func(slot int, r trialRange) {
			defer wg.Done()
			gen := newPathGenerator(params, workerSeed(baseSeed, slot))
			partials[slot] = accumulate(gen, r)
		}(i, r)
	}
	wg.Wait()

	price, lower, upper, err := aggregate(partials, params.RiskFreeRate, params.TimeToMaturity)
	if err != nil {
		return nil, err
	}
	e.Logger.Debugf("simulate: price=%g ci=[%g, %g] elapsed=%s", price, lower, upper, time.Since(start))

	return &domain.PricingResult{
		OptionPrice: price,
		Confidence:  domain.ConfidenceInterval{Lower: lower, Upper: upper},
		WorkersUsed: workers,
	}, nil
}

// workerSeed derives an independent stream seed for one worker by mixing the
// worker index into the invocation's base seed with the splitmix64
// finalizer, so adjacent indices land far apart in seed space.
func workerSeed(base int64, worker int) uint64 {
	x := uint64(base) + uint64(worker+1)*0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

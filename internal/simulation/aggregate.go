package simulation

import (
	"errors"
	"math"
)

// ErrNoTrials reports an aggregation over zero trials. The partitioner never
// produces an empty range, so seeing this error indicates an internal
// defect, not bad input.
var ErrNoTrials = errors.New("simulation: aggregation over zero trials")

// z95 is the z-score for a 95% confidence interval.
const z95 = 1.96

// aggregate reduces per-worker summaries into the discounted price estimate
// and its confidence bounds. The reduction is a plain sum, so the outcome
// does not depend on slice order.
//
// Variance uses the population identity E[X^2] - E[X]^2 over the total
// count, consistently for any worker count. Floating-point cancellation can
// push the identity marginally below zero when the true variance is near
// zero; it is clamped before the square root.
func aggregate(partials []partialStats, riskFreeRate, timeToMaturity float64) (price, lower, upper float64, err error) {
	var sum, sumSq float64
	var count int
	for _, p := range partials {
		sum += p.Sum
		sumSq += p.SumSquares
		count += p.Count
	}
	if count == 0 {
		return 0, 0, 0, ErrNoTrials
	}

	n := float64(count)
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	stdError := math.Sqrt(variance / n)

	discount := math.Exp(-riskFreeRate * timeToMaturity)
	price = mean * discount
	margin := z95 * stdError * discount
	return price, price - margin, price + margin, nil
}

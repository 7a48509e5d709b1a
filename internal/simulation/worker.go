package simulation

// trialRange is a half-open [Start, End) block of trial indices assigned to
// exactly one worker.
type trialRange struct {
	Start int
	End   int
}

func (r trialRange) Len() int { return r.End - r.Start }

// partialStats is one worker's compact summary of its trial range. Shipping
// (sum, sum of squares, count) instead of raw payoffs keeps cross-worker
// data volume constant in the trial count. Each value is written by exactly
// one goroutine and read only after that goroutine has been joined.
type partialStats struct {
	Sum        float64
	SumSquares float64
	Count      int
}

// accumulate runs every trial in r through gen, folding each payoff into
// running sums. No per-trial value survives the loop, so memory stays O(1)
// per worker regardless of range size, and nothing shared is touched.
func accumulate(gen *pathGenerator, r trialRange) partialStats {
	var sum, sumSq float64
	for i := r.Start; i < r.End; i++ {
		p := gen.payoff()
		sum += p
		sumSq += p * p
	}
	return partialStats{Sum: sum, SumSquares: sumSq, Count: r.Len()}
}

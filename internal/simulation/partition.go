package simulation

import "runtime"

// defaultWorkerFallback is used when the runtime cannot report a usable CPU
// count.
const defaultWorkerFallback = 4

// resolveWorkerCount turns a requested worker count into an effective one.
// A request of 0 means hardware parallelism, and the count is clamped to the
// trial count so no worker is ever left without trials.
func resolveWorkerCount(requested, numTrials int) int {
	workers := requested
	if workers == 0 {
		workers = runtime.NumCPU()
		if workers <= 0 {
			workers = defaultWorkerFallback
		}
	}
	if workers > numTrials {
		workers = numTrials
	}
	return workers
}

// partitionTrials splits [0, numTrials) into workers contiguous ranges whose
// lengths differ by at most one: the first numTrials%workers ranges take one
// extra trial. The returned ranges cover the interval exactly, with no
// overlap and no gap.
func partitionTrials(numTrials, workers int) []trialRange {
	base := numTrials / workers
	extra := numTrials % workers
	ranges := make([]trialRange, workers)
	start := 0
	for i := range ranges {
		length := base
		if i < extra {
			length++
		}
		ranges[i] = trialRange{Start: start, End: start + length}
		start += length
	}
	return ranges
}

package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/optmc/option-pricer/internal/benchmark"
)

// FormatBenchmarkJSON serializes a benchmark summary as pretty-printed JSON.
func FormatBenchmarkJSON(summary *benchmark.Summary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}

// FormatBenchmarkConsole renders per-run timings and the wall-clock summary
// as a console table.
func FormatBenchmarkConsole(summary *benchmark.Summary) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%-10s %14s %14s %28s\n", "iteration", "time (ms)", "price", "95% confidence")
	for _, run := range summary.Runs {
		fmt.Fprintf(&buf, "%-10d %14.3f %14s [%s, %s]\n",
			run.Iteration, run.ExecutionTimeMs,
			fixed(run.OptionPrice),
			fixed(run.Confidence.Lower), fixed(run.Confidence.Upper))
	}
	fmt.Fprintf(&buf, "\nruns: %d  min: %.3fms  max: %.3fms  mean: %.3fms  median: %.3fms\n",
		len(summary.Runs), summary.MinMs, summary.MaxMs, summary.MeanMs, summary.MedianMs)
	return buf.Bytes(), nil
}

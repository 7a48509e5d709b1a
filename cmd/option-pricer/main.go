package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/optmc/option-pricer/internal/benchmark"
	"github.com/optmc/option-pricer/internal/config"
	"github.com/optmc/option-pricer/internal/domain"
	"github.com/optmc/option-pricer/internal/output"
	"github.com/optmc/option-pricer/internal/simulation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "option-pricer",
		Short:         "Monte Carlo pricing for European options",
		Long:          "Prices a European call or put under the Black-Scholes model by parallel Monte Carlo simulation, reporting the estimate with a 95% confidence interval.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPriceCmd(), newBenchmarkCmd())
	return root
}

// paramFlags is the shared parameter surface of the price and benchmark
// commands.
type paramFlags struct {
	input    string
	spot     float64
	strike   float64
	rate     float64
	vol      float64
	maturity float64
	put      bool
	trials   int
	workers  int
	seed     int64
	verbose  bool
}

func (pf *paramFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&pf.input, "input", "i", "", "parameter file (YAML or JSON); overrides the value flags")
	flags.Float64Var(&pf.spot, "spot", 100, "initial asset price")
	flags.Float64Var(&pf.strike, "strike", 100, "strike price")
	flags.Float64Var(&pf.rate, "rate", 0.05, "annual risk-free rate")
	flags.Float64Var(&pf.vol, "volatility", 0.2, "annual volatility")
	flags.Float64Var(&pf.maturity, "maturity", 1, "time to maturity in years")
	flags.BoolVar(&pf.put, "put", false, "price a put instead of a call")
	flags.IntVar(&pf.trials, "trials", 1_000_000, "number of simulation trials")
	flags.IntVar(&pf.workers, "workers", 0, "worker count (0 = hardware parallelism)")
	flags.Int64Var(&pf.seed, "seed", 0, "base random seed (0 = process entropy)")
	flags.BoolVarP(&pf.verbose, "verbose", "v", false, "log engine internals to stderr")
}

// parameters resolves the flag surface into a Parameters value, loading the
// input file when one is given. Validation itself happens at the engine
// boundary.
func (pf *paramFlags) parameters() (*domain.Parameters, error) {
	if pf.input != "" {
		return config.NewInputParser().LoadFromFile(pf.input)
	}
	kind := domain.Call
	if pf.put {
		kind = domain.Put
	}
	return &domain.Parameters{
		Spot:           decimalFromFlag(pf.spot),
		Strike:         decimalFromFlag(pf.strike),
		RiskFreeRate:   pf.rate,
		Volatility:     pf.vol,
		TimeToMaturity: pf.maturity,
		Kind:           kind,
		NumTrials:      pf.trials,
		WorkerCount:    pf.workers,
		Seed:           pf.seed,
	}, nil
}

func (pf *paramFlags) engine() *simulation.Engine {
	engine := simulation.NewEngine()
	if pf.verbose {
		engine.SetLogger(stderrLogger{})
	}
	return engine
}

func newPriceCmd() *cobra.Command {
	var pf paramFlags
	var format string

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a single option",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := output.ForName(format)
			if err != nil {
				return surface(cmd, err)
			}
			params, err := pf.parameters()
			if err != nil {
				return surface(cmd, err)
			}
			result, err := pf.engine().Simulate(cmd.Context(), params)
			if err != nil {
				return surface(cmd, err)
			}
			if pf.verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "analytic reference: %g\n", simulation.BlackScholesPrice(params))
			}
			data, err := formatter.Format(result)
			if err != nil {
				return surface(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json or console)")
	return cmd
}

func newBenchmarkCmd() *cobra.Command {
	var pf paramFlags
	var iterations int
	var format string

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Run the pricing engine repeatedly and report timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := pf.parameters()
			if err != nil {
				return surface(cmd, err)
			}
			runner := benchmark.NewRunner(pf.engine(), iterations)
			summary, err := runner.Run(cmd.Context(), params)
			if err != nil {
				return surface(cmd, err)
			}
			var data []byte
			if format == "json" {
				data, err = output.FormatBenchmarkJSON(summary)
			} else {
				data, err = output.FormatBenchmarkConsole(summary)
			}
			if err != nil {
				return surface(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 10, "number of benchmark iterations")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (json or console)")
	return cmd
}

func decimalFromFlag(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// surface prints the structured error envelope and hands the error back to
// cobra for the nonzero exit code. Validation failures are never retried.
func surface(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.OutOrStdout(), string(output.FormatError(err)))
	return err
}

// stderrLogger adapts the engine's Logger interface to stderr for --verbose.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { logf("DEBUG", format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { logf("INFO", format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { logf("WARN", format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { logf("ERROR", format, args...) }

func logf(level, format string, args ...any) {
	fmt.Fprintf(os.Stderr, level+" "+format+"\n", args...)
}

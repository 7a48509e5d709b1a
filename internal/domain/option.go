package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OptionKind identifies which side of the strike an option pays on.
type OptionKind string

const (
	Call OptionKind = "call"
	Put  OptionKind = "put"
)

// ParseOptionKind converts a user-supplied string into an OptionKind.
func ParseOptionKind(s string) (OptionKind, error) {
	switch OptionKind(s) {
	case Call:
		return Call, nil
	case Put:
		return Put, nil
	default:
		return "", &ValidationError{Field: "kind", Reason: fmt.Sprintf("must be %q or %q, got %q", Call, Put, s)}
	}
}

// Parameters describes one pricing request: the option contract, the market
// assumptions and the simulation settings. Spot and strike are carried as
// decimals in the file format; the engine reads them through the float
// accessors.
type Parameters struct {
	Spot           decimal.Decimal `yaml:"spot" json:"spot"`
	Strike         decimal.Decimal `yaml:"strike" json:"strike"`
	RiskFreeRate   float64         `yaml:"risk_free_rate" json:"risk_free_rate"`
	Volatility     float64         `yaml:"volatility" json:"volatility"`
	TimeToMaturity float64         `yaml:"time_to_maturity" json:"time_to_maturity"` // in years
	Kind           OptionKind      `yaml:"kind" json:"kind"`
	NumTrials      int             `yaml:"num_trials" json:"num_trials"`

	// WorkerCount of 0 lets the engine use the hardware parallelism.
	WorkerCount int `yaml:"worker_count,omitempty" json:"worker_count,omitempty"`

	// Seed of 0 draws a fresh seed from process entropy; any other value
	// makes the run reproducible.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// SpotPrice returns the initial asset price as a float for the hot loop.
func (p *Parameters) SpotPrice() float64 { return p.Spot.InexactFloat64() }

// StrikePrice returns the strike as a float for the hot loop.
func (p *Parameters) StrikePrice() float64 { return p.Strike.InexactFloat64() }

// Validate checks every parameter the simulation depends on. It is called
// once at the engine boundary; workers trust it and never re-validate.
func (p *Parameters) Validate() error {
	if !p.Spot.GreaterThan(decimal.Zero) {
		return &ValidationError{Field: "spot", Reason: "must be strictly positive"}
	}
	if !p.Strike.GreaterThan(decimal.Zero) {
		return &ValidationError{Field: "strike", Reason: "must be strictly positive"}
	}
	if !(p.Volatility > 0) {
		return &ValidationError{Field: "volatility", Reason: "must be strictly positive"}
	}
	if !(p.TimeToMaturity > 0) {
		return &ValidationError{Field: "time_to_maturity", Reason: "must be strictly positive"}
	}
	if p.Kind != Call && p.Kind != Put {
		return &ValidationError{Field: "kind", Reason: fmt.Sprintf("must be %q or %q, got %q", Call, Put, p.Kind)}
	}
	if p.NumTrials <= 0 {
		return &ValidationError{Field: "num_trials", Reason: "must be strictly positive"}
	}
	if p.WorkerCount < 0 {
		return &ValidationError{Field: "worker_count", Reason: "cannot be negative"}
	}
	return nil
}

// ConfidenceInterval bounds the price estimate at the 95% level.
type ConfidenceInterval struct {
	Lower float64 `yaml:"lower" json:"lower"`
	Upper float64 `yaml:"upper" json:"upper"`
}

// PricingResult is the engine's output for one invocation. It has no further
// lifecycle; callers treat it as read-only.
type PricingResult struct {
	OptionPrice float64            `yaml:"option_price" json:"optionPrice"`
	Confidence  ConfidenceInterval `yaml:"confidence" json:"confidence"`
	WorkersUsed int                `yaml:"workers_used" json:"workersUsed"`
}

// ValidationError reports a parameter that fails the engine's preconditions.
// It is fully recoverable: the caller corrects the input and retries.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

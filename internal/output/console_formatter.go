package output

import (
	"bytes"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/optmc/option-pricer/internal/domain"
)

// displayPlaces is the fixed-point precision used for console prices.
const displayPlaces = 6

// ConsoleFormatter renders a human-readable summary of the pricing result.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.PricingResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Option price:     %s\n", fixed(result.OptionPrice))
	fmt.Fprintf(&buf, "95%% confidence:   [%s, %s]\n", fixed(result.Confidence.Lower), fixed(result.Confidence.Upper))
	fmt.Fprintf(&buf, "Interval width:   %s\n", fixed(result.Confidence.Upper-result.Confidence.Lower))
	fmt.Fprintf(&buf, "Workers used:     %d\n", result.WorkersUsed)
	return buf.Bytes(), nil
}

// fixed formats a price at display precision without float formatting noise.
// Non-finite values pass through untouched; they signal extreme inputs and
// must stay visible.
func fixed(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%g", v)
	}
	return decimal.NewFromFloat(v).StringFixed(displayPlaces)
}

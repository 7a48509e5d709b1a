package output

import (
	"encoding/json"

	"github.com/optmc/option-pricer/internal/domain"
)

// JSONFormatter serializes the pricing result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.PricingResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// ErrorEnvelope is the structured error response the boundary adapter
// prints when validation rejects the input.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// FormatError renders err in the same JSON envelope the result would use.
func FormatError(err error) []byte {
	data, merr := json.Marshal(ErrorEnvelope{Error: err.Error()})
	if merr != nil {
		return []byte(`{"error":"unprintable error"}`)
	}
	return data
}

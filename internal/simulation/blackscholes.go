package simulation

import (
	"math"

	"github.com/optmc/option-pricer/internal/domain"
)

// BlackScholesPrice returns the closed-form European option price for the
// same parameters Simulate prices by Monte Carlo. It serves as the analytic
// reference the simulated estimate converges to.
func BlackScholesPrice(params *domain.Parameters) float64 {
	s := params.SpotPrice()
	k := params.StrikePrice()
	r := params.RiskFreeRate
	sigma := params.Volatility
	t := params.TimeToMaturity

	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	d2 := d1 - sigma*math.Sqrt(t)

	if params.Kind == domain.Call {
		return s*normCDF(d1) - k*math.Exp(-r*t)*normCDF(d2)
	}
	return k*math.Exp(-r*t)*normCDF(-d2) - s*normCDF(-d1)
}

func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

package simulation

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/optmc/option-pricer/internal/domain"
)

// variateBatchSize is how many standard-normal draws a generator buffers at
// a time. Drawing normals dominates the per-trial cost, so refilling in bulk
// amortizes the distribution call and keeps the hot loop on a warm buffer.
const variateBatchSize = 4096

// pathGenerator turns standard-normal variates into terminal asset prices
// and payoffs for one worker. It owns its random source and buffer outright;
// it is not safe for concurrent use and is never shared between goroutines.
type pathGenerator struct {
	dist distuv.Normal
	buf  []float64
	next int

	spot   float64
	strike float64
	drift  float64 // (r - sigma^2/2) * T, precomputed once
	vol    float64 // sigma * sqrt(T), precomputed once
	call   bool
}

func newPathGenerator(p *domain.Parameters, seed uint64) *pathGenerator {
	sigma := p.Volatility
	t := p.TimeToMaturity
	return &pathGenerator{
		dist:   distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)},
		buf:    make([]float64, 0, variateBatchSize),
		spot:   p.SpotPrice(),
		strike: p.StrikePrice(),
		drift:  (p.RiskFreeRate - 0.5*sigma*sigma) * t,
		vol:    sigma * math.Sqrt(t),
		call:   p.Kind == domain.Call,
	}
}

// normal returns the next variate, refilling the batch buffer on exhaustion.
func (g *pathGenerator) normal() float64 {
	if g.next == len(g.buf) {
		g.buf = g.buf[:cap(g.buf)]
		for i := range g.buf {
			g.buf[i] = g.dist.Rand()
		}
		g.next = 0
	}
	z := g.buf[g.next]
	g.next++
	return z
}

// payoff simulates one terminal price ST = S0*exp(drift + vol*z) and returns
// the option payoff. Both candidate payoffs are non-negative by
// construction, so the kind only selects which one to return.
func (g *pathGenerator) payoff() float64 {
	st := g.spot * math.Exp(g.drift+g.vol*g.normal())
	if g.call {
		return math.Max(st-g.strike, 0)
	}
	return math.Max(g.strike-st, 0)
}

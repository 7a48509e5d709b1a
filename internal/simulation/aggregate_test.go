package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateHandComputed(t *testing.T) {
	// Ten payoffs: five of 1.0 and five of 3.0, split across two workers.
	// mean = 2, variance = E[X^2]-E[X]^2 = 5 - 4 = 1, stdError = sqrt(1/10).
	partials := []partialStats{
		{Sum: 5, SumSquares: 5, Count: 5},
		{Sum: 15, SumSquares: 45, Count: 5},
	}
	r, maturity := 0.05, 1.0
	discount := math.Exp(-r * maturity)

	price, lower, upper, err := aggregate(partials, r, maturity)
	require.NoError(t, err)

	wantPrice := 2 * discount
	wantMargin := 1.96 * math.Sqrt(0.1) * discount
	assert.InDelta(t, wantPrice, price, 1e-12)
	assert.InDelta(t, wantPrice-wantMargin, lower, 1e-12)
	assert.InDelta(t, wantPrice+wantMargin, upper, 1e-12)
}

func TestAggregateZeroRateLeavesMeanUndiscounted(t *testing.T) {
	partials := []partialStats{{Sum: 20, SumSquares: 40, Count: 10}}
	price, lower, upper, err := aggregate(partials, 0, 1)
	require.NoError(t, err)
	// Constant payoff of 2: zero variance, degenerate interval.
	assert.Equal(t, 2.0, price)
	assert.Equal(t, price, lower)
	assert.Equal(t, price, upper)
}

func TestAggregateOrderIndependent(t *testing.T) {
	// Integer-valued sums add exactly in any order, so permuting the
	// partials must reproduce the result bit for bit.
	partials := []partialStats{
		{Sum: 12, SumSquares: 50, Count: 4},
		{Sum: 7, SumSquares: 19, Count: 3},
		{Sum: 30, SumSquares: 260, Count: 5},
		{Sum: 2, SumSquares: 4, Count: 2},
	}
	permuted := []partialStats{partials[2], partials[0], partials[3], partials[1]}

	p1, l1, u1, err := aggregate(partials, 0.03, 2)
	require.NoError(t, err)
	p2, l2, u2, err := aggregate(permuted, 0.03, 2)
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, l1, l2)
	assert.Equal(t, u1, u2)
}

func TestAggregateZeroCountIsDefect(t *testing.T) {
	_, _, _, err := aggregate(nil, 0.05, 1)
	assert.ErrorIs(t, err, ErrNoTrials)

	_, _, _, err = aggregate([]partialStats{{}}, 0.05, 1)
	assert.ErrorIs(t, err, ErrNoTrials)
}

func TestAggregateClampsNegativeVariance(t *testing.T) {
	// Crafted so that sumSquares/n - mean^2 lands a few ulps below zero.
	partials := []partialStats{
		{Sum: 3.0000000000000004, SumSquares: 3.0, Count: 3},
	}
	price, lower, upper, err := aggregate(partials, 0, 1)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(price))
	assert.False(t, math.IsNaN(lower))
	assert.Equal(t, price, lower, "clamped variance collapses the interval")
	assert.Equal(t, price, upper)
}

func TestAggregatePropagatesNonFiniteSums(t *testing.T) {
	partials := []partialStats{
		{Sum: math.Inf(1), SumSquares: math.Inf(1), Count: 10},
	}
	price, _, _, err := aggregate(partials, 0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(price, 1) || math.IsNaN(price),
		"non-finite payoffs must not be masked")
}

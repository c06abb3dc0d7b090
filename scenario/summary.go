// SPDX-License-Identifier: MIT
// Package: lvboot/scenario
//
// summary.go — descriptive statistics over a batch.
//
// Conventions:
//   - StdDev is the sample standard deviation (n-1); 0 for fewer than two values.
//   - Quantiles use the empirical CDF (smallest x with F(x) ≥ p) on a sorted copy.

package scenario

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats describes one sample of values.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Q05    float64
	Median float64
	Q95    float64
}

// Summary aggregates a batch.
type Summary struct {
	Name          string
	Method        string
	Count         int
	Volatility    Stats
	TerminalPrice Stats
}

// Summary describes the volatilities and terminal prices of the batch.
func (b Batch) Summary() Summary {
	return Summary{
		Name:          b.name,
		Method:        b.method,
		Count:         len(b.items),
		Volatility:    Describe(b.Volatilities()),
		TerminalPrice: Describe(b.TerminalPrices()),
	}
}

// Describe computes Stats for xs. An empty input yields zero Stats.
// xs is not modified.
func Describe(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	s := Stats{
		Mean:   stat.Mean(sorted, nil),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Q05:    stat.Quantile(0.05, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

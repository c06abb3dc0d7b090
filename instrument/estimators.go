// SPDX-License-Identifier: MIT
// Package: lvboot/instrument
//
// estimators.go — return, drift and volatility estimators.
//
// Conventions (fixed, documented, tested):
//   • Returns are per-period (one per consecutive price pair), log by default.
//   • Volatility is the SAMPLE standard deviation (denominator n-1) of the
//     returns. It is NOT annualized; see Instrument.Annualized.
//   • With a single return the dispersion is unobservable and volatility is 0.
//   • Drift is the arithmetic mean of the returns.

package instrument

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Returns computes the per-period returns of prices under kind.
// The result has len(prices)-1 elements (nil for fewer than two prices).
// Prices are assumed positive; New guarantees that for instrument data.
//
// Complexity: O(n) time, O(n) space.
func Returns(prices []float64, kind ReturnKind) []float64 {
	if len(prices) < MinPrices {
		return nil
	}
	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		ratio := prices[i] / prices[i-1]
		if kind == SimpleReturns {
			out[i-1] = ratio - 1
		} else {
			out[i-1] = math.Log(ratio)
		}
	}
	return out
}

// EstimateVolatility returns the sample standard deviation of returns.
// Fewer than two returns yield 0.
func EstimateVolatility(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil)
}

// EstimateDrift returns the mean of returns (0 for an empty slice).
func EstimateDrift(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return stat.Mean(returns, nil)
}

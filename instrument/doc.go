// SPDX-License-Identifier: MIT

// Package instrument models a priced financial instrument as an immutable
// value: a chronological price series, an identifying name, a drift and a
// volatility.
//
// Volatility and drift are either supplied at construction or estimated
// from the per-period returns of the prices:
//
//	volatility = sample standard deviation (n-1) of the returns
//	drift      = mean of the returns
//
// Returns are log returns unless WithReturnKind(SimpleReturns) is given.
// Volatility is per period; use Annualized to scale it.
//
// Instruments are never mutated. To "change" the prices, call WithPrices,
// which builds a new value and re-estimates the volatility:
//
//	a, _ := instrument.New([]float64{1, 2, 3, 4, 5, 6, 7, 8}, "AAPL")
//	b, _ := a.WithPrices([]float64{12, 11, 14, 20, 12, 11, 20})
//	// a is unchanged; b.Volatility() describes the new series.
//
// Invalid input (short series, non-positive or non-finite prices, empty
// name, bad supplied figures) is reported with errors wrapping
// ErrInvalidInput.
package instrument

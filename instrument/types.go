// SPDX-License-Identifier: MIT
// Package: lvboot/instrument

package instrument

// ReturnKind selects how per-period returns are derived from prices.
// Both the volatility and the drift estimators use it.
type ReturnKind int

const (
	// LogReturns uses r_t = ln(p_t / p_{t-1}). Default.
	LogReturns ReturnKind = iota

	// SimpleReturns uses r_t = p_t / p_{t-1} - 1.
	SimpleReturns
)

// String implements fmt.Stringer.
func (k ReturnKind) String() string {
	switch k {
	case LogReturns:
		return "log"
	case SimpleReturns:
		return "simple"
	default:
		return "unknown"
	}
}

// valid reports whether k is one of the declared kinds.
func (k ReturnKind) valid() bool {
	return k == LogReturns || k == SimpleReturns
}

// MinPrices is the shortest accepted price series: one return is needed
// before any dispersion can be described.
const MinPrices = 2

// Instrument is an immutable priced instrument (e.g. a stock).
//
// The zero value is not a valid instrument; build one with New. All fields
// are private and every accessor returns either a scalar or a fresh copy,
// so an Instrument can be shared between goroutines without locking.
// Changing the prices means building a new value with WithPrices.
type Instrument struct {
	prices     []float64  // chronological, len ≥ MinPrices, all finite and > 0
	name       string     // identifying label, non-empty
	drift      float64    // mean per-period return (estimated or supplied)
	volatility float64    // per-period return dispersion (estimated or supplied)
	kind       ReturnKind // return definition used by the estimators

	driftSupplied      bool // drift came from WithDrift
	volatilitySupplied bool // volatility came from WithVolatility
}

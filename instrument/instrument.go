// SPDX-License-Identifier: MIT
// Package: lvboot/instrument
//
// instrument.go — construction, rebuild-on-modification and accessors.

package instrument

import (
	"fmt"
	"math"
)

// New builds an immutable Instrument from a chronological price series.
//
// Unless supplied through WithVolatility / WithDrift, volatility and drift
// are estimated from the returns of prices (see estimators.go). A supplied
// volatility is stored exactly and never re-estimated.
//
// The prices slice is copied; later writes by the caller do not affect the
// instrument.
//
// Errors (all wrap ErrInvalidInput):
//   - fewer than MinPrices prices;
//   - a NaN, ±Inf, zero or negative price;
//   - an empty name;
//   - a supplied volatility that is negative or non-finite;
//   - a supplied drift that is non-finite.
//
// Complexity: O(n) time, O(n) space.
func New(prices []float64, name string, opts ...Option) (Instrument, error) {
	cfg := newConfig(opts...)
	return build(methodNew, prices, name, cfg)
}

// build validates input and assembles the value. Shared by New and WithPrices
// so both paths apply identical rules.
func build(method string, prices []float64, name string, cfg config) (Instrument, error) {
	if len(prices) < MinPrices {
		return Instrument{}, invalidf(method, "need at least %d prices, got %d", MinPrices, len(prices))
	}
	if name == "" {
		return Instrument{}, invalidf(method, "empty name")
	}
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return Instrument{}, invalidf(method, "price[%d]=%g is not a positive finite number", i, p)
		}
	}

	owned := make([]float64, len(prices))
	copy(owned, prices)

	inst := Instrument{
		prices: owned,
		name:   name,
		kind:   cfg.kind,
	}

	returns := Returns(owned, cfg.kind)

	if cfg.volatility != nil {
		v := *cfg.volatility
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Instrument{}, invalidf(method, "volatility %g must be a finite number ≥ 0", v)
		}
		inst.volatility = v
		inst.volatilitySupplied = true
	} else {
		inst.volatility = EstimateVolatility(returns)
	}

	if cfg.drift != nil {
		d := *cfg.drift
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return Instrument{}, invalidf(method, "drift %g must be finite", d)
		}
		inst.drift = d
		inst.driftSupplied = true
	} else {
		inst.drift = EstimateDrift(returns)
	}

	return inst, nil
}

// WithPrices returns a brand-new Instrument with the same name, return kind
// and (if it was supplied) drift, built over prices. Volatility is always
// re-estimated from the new series, even if the receiver's was supplied:
// a supplied figure describes the old prices only.
//
// The receiver is never modified. Errors wrap ErrInvalidInput as in New.
func (i Instrument) WithPrices(prices []float64) (Instrument, error) {
	cfg := config{kind: i.kind}
	if i.driftSupplied {
		d := i.drift
		cfg.drift = &d
	}
	if !i.kind.valid() {
		cfg.kind = LogReturns
	}
	return build(methodWithPrices, prices, i.name, cfg)
}

// Name returns the identifying label.
func (i Instrument) Name() string { return i.name }

// Prices returns a copy of the price series.
func (i Instrument) Prices() []float64 {
	out := make([]float64, len(i.prices))
	copy(out, i.prices)
	return out
}

// Len returns the number of prices.
func (i Instrument) Len() int { return len(i.prices) }

// First returns the first price (0 for the zero value).
func (i Instrument) First() float64 {
	if len(i.prices) == 0 {
		return 0
	}
	return i.prices[0]
}

// Last returns the last price (0 for the zero value).
func (i Instrument) Last() float64 {
	if len(i.prices) == 0 {
		return 0
	}
	return i.prices[len(i.prices)-1]
}

// Drift returns the mean per-period return, estimated or supplied.
func (i Instrument) Drift() float64 { return i.drift }

// Volatility returns the per-period volatility, estimated or supplied.
func (i Instrument) Volatility() float64 { return i.volatility }

// ReturnKind reports the return definition used by the estimators.
func (i Instrument) ReturnKind() ReturnKind { return i.kind }

// DriftSupplied reports whether the drift came from WithDrift.
func (i Instrument) DriftSupplied() bool { return i.driftSupplied }

// VolatilitySupplied reports whether the volatility came from WithVolatility.
func (i Instrument) VolatilitySupplied() bool { return i.volatilitySupplied }

// Returns computes a fresh slice of per-period returns.
func (i Instrument) Returns() []float64 { return Returns(i.prices, i.kind) }

// Valid reports whether i was produced by New or WithPrices.
func (i Instrument) Valid() bool { return len(i.prices) >= MinPrices && i.name != "" }

// Annualized scales the per-period volatility by √periodsPerYear
// (e.g. 252 for daily trading data). Non-positive periods yield 0.
func (i Instrument) Annualized(periodsPerYear float64) float64 {
	if periodsPerYear <= 0 {
		return 0
	}
	return i.volatility * math.Sqrt(periodsPerYear)
}

// String implements fmt.Stringer.
func (i Instrument) String() string {
	return fmt.Sprintf("Instrument{name=%s, len=%d, drift=%g, volatility=%g}",
		i.name, len(i.prices), i.drift, i.volatility)
}

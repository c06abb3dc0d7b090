// SPDX-License-Identifier: MIT
// Package: lvboot/scenario

package scenario

import "github.com/katalvlaran/lvboot/instrument"

// Batch is the ordered result of one Factory call. It has no mutation API;
// Instruments returns a copy of the slice.
type Batch struct {
	name   string
	method string
	items  []instrument.Instrument
}

// Len returns the number of instruments.
func (b Batch) Len() int { return len(b.items) }

// At returns instrument i (generation order). Panics when out of range,
// like a slice index.
func (b Batch) At(i int) instrument.Instrument { return b.items[i] }

// Name returns the seed's name, shared by every instrument.
func (b Batch) Name() string { return b.name }

// Method returns the name of the method that produced the batch.
func (b Batch) Method() string { return b.method }

// Instruments returns a copy of the instruments.
func (b Batch) Instruments() []instrument.Instrument {
	out := make([]instrument.Instrument, len(b.items))
	copy(out, b.items)
	return out
}

// Volatilities returns the volatility of each instrument, in order.
func (b Batch) Volatilities() []float64 {
	out := make([]float64, len(b.items))
	for i, it := range b.items {
		out[i] = it.Volatility()
	}
	return out
}

// TerminalPrices returns the last price of each instrument, in order.
func (b Batch) TerminalPrices() []float64 {
	out := make([]float64, len(b.items))
	for i, it := range b.items {
		out[i] = it.Last()
	}
	return out
}

// MeanVolatility is the arithmetic mean of Volatilities (0 when empty).
func (b Batch) MeanVolatility() float64 {
	return Describe(b.Volatilities()).Mean
}

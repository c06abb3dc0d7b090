// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"

	"github.com/katalvlaran/lvboot/instrument"
	"github.com/katalvlaran/lvboot/marketdata"
)

// sourceFlags selects the seed instrument. Shared by inspect and generate.
type sourceFlags struct {
	csv    string
	column string
	name   string
	simple bool
}

func (s *sourceFlags) register(f *flag.FlagSet) {
	f.StringVar(&s.csv, "csv", "", "CSV price history with a header row (required)")
	f.StringVar(&s.column, "column", "Adj Close", "price column to read")
	f.StringVar(&s.name, "name", "", "instrument name (defaults to the column)")
	f.BoolVar(&s.simple, "simple", false, "estimate from simple returns instead of log returns")
}

func (s *sourceFlags) load() (instrument.Instrument, error) {
	if s.csv == "" {
		return instrument.Instrument{}, errors.New("-csv is required")
	}
	prices, err := marketdata.LoadCSVFile(s.csv, s.column)
	if err != nil {
		return instrument.Instrument{}, err
	}
	name := s.name
	if name == "" {
		name = s.column
	}
	kind := instrument.LogReturns
	if s.simple {
		kind = instrument.SimpleReturns
	}
	return instrument.New(prices, name, instrument.WithReturnKind(kind))
}

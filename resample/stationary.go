// SPDX-License-Identifier: MIT
// Package: lvboot/resample
//
// stationary.go — Politis–Romano (1994) stationary bootstrap.
//
// Blocks start at uniform positions and have Geometric(p) lengths with
// mean 1/p = MeanBlock, wrapping circularly. Random block lengths keep the
// resampled series stationary while preserving short-range serial
// dependence, which an i.i.d. resample destroys.

package resample

import (
	"math"
	"math/rand"
)

// Stationary is the stationary block bootstrap.
//
//   - MeanBlock: expected block length (≥ 1). Zero selects it from the
//     data with OptimalBlockLength.
//   - Domain: ReturnsDomain (default) or LevelDomain.
type Stationary struct {
	MeanBlock float64
	Domain    Domain
}

// Name implements Method.
func (Stationary) Name() string { return NameStationary }

// Resample implements Method.
func (s Stationary) Resample(series []float64, length int, rng *rand.Rand) ([]float64, error) {
	if s.MeanBlock != 0 && (math.IsNaN(s.MeanBlock) || math.IsInf(s.MeanBlock, 0) || s.MeanBlock < 1) {
		return nil, errorf(NameStationary, ErrBadParameter, "MeanBlock %g must be ≥ 1 (or 0 for automatic)", s.MeanBlock)
	}

	src, n, err := prepare(NameStationary, series, length, s.Domain)
	if err != nil {
		return nil, err
	}

	mean := s.MeanBlock
	if mean == 0 {
		mean = OptimalBlockLength(src)
	}
	p := 1 / mean

	r := rngOr(rng)
	drawn := drawBlocks(src, n, r, func() int { return geometric(r, p) })
	path := finish(s.Domain, series, drawn)

	if err = checkPath(NameStationary, path, outputLength(series, length)); err != nil {
		return nil, err
	}
	return path, nil
}

// Resolve implements Resolver: MeanBlock 0 is replaced by the block length
// OptimalBlockLength selects for series in the method's domain.
func (s Stationary) Resolve(series []float64) Method {
	if s.MeanBlock != 0 {
		return s
	}
	src, _, err := prepare(NameStationary, series, 0, s.Domain)
	if err != nil {
		return s
	}
	s.MeanBlock = OptimalBlockLength(src)
	return s
}

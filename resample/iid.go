// SPDX-License-Identifier: MIT
// Package: lvboot/resample

package resample

import "math/rand"

// IID is the plain (Efron) bootstrap: every value is drawn independently.
// It ignores serial dependence; mostly useful as a baseline.
type IID struct {
	Domain Domain
}

// Name implements Method.
func (IID) Name() string { return NameIID }

// Resample implements Method.
func (m IID) Resample(series []float64, length int, rng *rand.Rand) ([]float64, error) {
	src, n, err := prepare(NameIID, series, length, m.Domain)
	if err != nil {
		return nil, err
	}

	drawn := drawBlocks(src, n, rngOr(rng), func() int { return 1 })
	path := finish(m.Domain, series, drawn)

	if err = checkPath(NameIID, path, outputLength(series, length)); err != nil {
		return nil, err
	}
	return path, nil
}

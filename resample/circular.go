// SPDX-License-Identifier: MIT
// Package: lvboot/resample

package resample

import (
	"math"
	"math/rand"
)

// Circular is the circular block bootstrap (Politis–Romano 1992): like
// Stationary, but every block has the same length Block.
// Block == 0 selects round(OptimalBlockLength(source)).
type Circular struct {
	Block  int
	Domain Domain
}

// Name implements Method.
func (Circular) Name() string { return NameCircular }

// Resample implements Method.
func (c Circular) Resample(series []float64, length int, rng *rand.Rand) ([]float64, error) {
	if c.Block < 0 {
		return nil, errorf(NameCircular, ErrBadParameter, "Block %d must be ≥ 0", c.Block)
	}

	src, n, err := prepare(NameCircular, series, length, c.Domain)
	if err != nil {
		return nil, err
	}

	block := c.Block
	if block == 0 {
		block = autoBlock(src)
	}

	drawn := drawBlocks(src, n, rngOr(rng), func() int { return block })
	path := finish(c.Domain, series, drawn)

	if err = checkPath(NameCircular, path, outputLength(series, length)); err != nil {
		return nil, err
	}
	return path, nil
}

// Resolve implements Resolver: Block 0 is replaced by the rounded
// OptimalBlockLength of series in the method's domain.
func (c Circular) Resolve(series []float64) Method {
	if c.Block != 0 {
		return c
	}
	src, _, err := prepare(NameCircular, series, 0, c.Domain)
	if err != nil {
		return c
	}
	c.Block = autoBlock(src)
	return c
}

// autoBlock is the fixed block length used when Block is 0.
func autoBlock(src []float64) int {
	return int(math.Round(OptimalBlockLength(src)))
}

// SPDX-License-Identifier: MIT
// Package: lvboot/resample
//
// blocks.go — the block-resampling engine shared by Stationary, Circular
// and IID, plus the domain mapping (levels vs. log returns).
//
// Procedure (one output series):
//  1. Map the source into the domain: values, or log returns.
//  2. Repeat until n values are emitted:
//     a. start := uniform index into the source;
//     b. L := blockLen() (method-specific);
//     c. emit src[(start+k) mod len(src)] for k < L, stopping at n
//        (the final block is trimmed to fit exactly).
//  3. Map back: levels are returned as is; returns are recompounded from
//     the first source value.
//
// Complexity: O(n) time and space per output series.

package resample

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvboot/instrument"
)

// prepare validates series/length and returns the domain source and the
// number of domain values to draw.
func prepare(method string, series []float64, length int, d Domain) (src []float64, n int, err error) {
	if len(series) < 2 {
		return nil, 0, errorf(method, ErrSeriesTooShort, "need at least 2 points, got %d", len(series))
	}
	if length <= 0 {
		length = len(series)
	}
	if length == 1 {
		return nil, 0, errorf(method, ErrDegenerate, "output length 1 carries no return")
	}
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, 0, errorf(method, ErrBadSeries, "value[%d]=%g is not finite", i, v)
		}
	}

	switch d {
	case LevelDomain:
		return series, length, nil
	case ReturnsDomain:
		if err = requirePositive(method, series); err != nil {
			return nil, 0, err
		}
		return instrument.Returns(series, instrument.LogReturns), length - 1, nil
	default:
		return nil, 0, errorf(method, ErrBadParameter, "unknown domain %d", int(d))
	}
}

// requirePositive rejects zero and negative values (log returns need them > 0).
func requirePositive(method string, series []float64) error {
	for i, v := range series {
		if v <= 0 {
			return errorf(method, ErrBadSeries, "value[%d]=%g must be > 0 in the returns domain", i, v)
		}
	}
	return nil
}

// drawBlocks emits n values from src in circular blocks whose lengths come
// from blockLen. The final block is trimmed.
func drawBlocks(src []float64, n int, rng *rand.Rand, blockLen func() int) []float64 {
	out := make([]float64, 0, n)
	size := len(src)
	var start, l, k int
	for len(out) < n {
		start = rng.Intn(size)
		l = blockLen()
		if l < 1 {
			l = 1
		}
		for k = 0; k < l && len(out) < n; k++ {
			out = append(out, src[(start+k)%size])
		}
	}
	return out
}

// finish maps drawn domain values back into a series.
func finish(d Domain, series, drawn []float64) []float64 {
	if d == LevelDomain {
		return drawn
	}
	return compound(series[0], drawn)
}

// compound rebuilds a price path from a start price and log returns.
// The result has len(returns)+1 points.
func compound(start float64, returns []float64) []float64 {
	path := make([]float64, len(returns)+1)
	path[0] = start
	for i, r := range returns {
		path[i+1] = path[i] * math.Exp(r)
	}
	return path
}

// checkPath rejects paths with NaN/Inf or a wrong length.
func checkPath(method string, path []float64, want int) error {
	if len(path) != want {
		return errorf(method, ErrDegenerate, "produced %d points, want %d", len(path), want)
	}
	for i, v := range path {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errorf(method, ErrDegenerate, "point[%d]=%g is not finite", i, v)
		}
	}
	return nil
}

// outputLength resolves the length <= 0 ⇒ len(series) policy.
func outputLength(series []float64, length int) int {
	if length <= 0 {
		return len(series)
	}
	return length
}

// geometric draws L ≥ 1 with P(L > k) = (1-p)^k, i.e. mean 1/p.
// Inversion: L = 1 + ⌊ln U / ln(1-p)⌋ with U ∈ (0,1].
func geometric(rng *rand.Rand, p float64) int {
	if p >= 1 {
		return 1
	}
	u := 1 - rng.Float64() // (0,1], avoids ln 0
	l := 1 + math.Floor(math.Log(u)/math.Log1p(-p))
	if l > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(l)
}

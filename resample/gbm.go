// SPDX-License-Identifier: MIT
// Package: lvboot/resample
//
// gbm.go — parametric scenarios from a discrete geometric Brownian motion.
//
// Model (one step per period):
//
//	S_0     = series[0]
//	S_{t+1} = S_t · exp(μ + σ·Z),  Z ~ N(0,1)
//
// μ is the mean log return per period (it already contains the -σ²/2 Itô
// term), σ the per-period volatility of log returns. Unless Explicit is
// set, both are calibrated on the series with the instrument estimators.
//
// Unlike the block methods, GBM does not reuse observed returns: it keeps
// the first two moments and nothing else (no fat tails, no dependence).

package resample

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvboot/instrument"
)

// GBM generates log-normal random-walk paths.
type GBM struct {
	Drift      float64 // μ, used when Explicit
	Volatility float64 // σ ≥ 0, used when Explicit
	Explicit   bool    // false ⇒ calibrate μ and σ on the series
}

// Name implements Method.
func (GBM) Name() string { return NameGBM }

// Resample implements Method.
func (g GBM) Resample(series []float64, length int, rng *rand.Rand) ([]float64, error) {
	if len(series) < 2 {
		return nil, errorf(NameGBM, ErrSeriesTooShort, "need at least 2 points, got %d", len(series))
	}
	n := outputLength(series, length)
	if n == 1 {
		return nil, errorf(NameGBM, ErrDegenerate, "output length 1 carries no return")
	}
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errorf(NameGBM, ErrBadSeries, "value[%d]=%g is not finite", i, v)
		}
	}
	if err := requirePositive(NameGBM, series); err != nil {
		return nil, err
	}

	mu, sigma := g.Drift, g.Volatility
	if !g.Explicit {
		mu, sigma = calibrate(series)
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) || math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return nil, errorf(NameGBM, ErrBadParameter, "drift %g / volatility %g", mu, sigma)
	}

	r := rngOr(rng)
	steps := make([]float64, n-1)
	for i := range steps {
		steps[i] = mu + sigma*r.NormFloat64()
	}
	path := compound(series[0], steps)

	if err := checkPath(NameGBM, path, n); err != nil {
		return nil, err
	}
	return path, nil
}

// Resolve implements Resolver: a calibrated GBM becomes an explicit one
// carrying the drift and volatility estimated on series.
func (g GBM) Resolve(series []float64) Method {
	if g.Explicit || len(series) < 2 || requirePositive(NameGBM, series) != nil {
		return g
	}
	g.Drift, g.Volatility = calibrate(series)
	g.Explicit = true
	return g
}

// calibrate estimates μ and σ from the log returns of series.
func calibrate(series []float64) (mu, sigma float64) {
	returns := instrument.Returns(series, instrument.LogReturns)
	return instrument.EstimateDrift(returns), instrument.EstimateVolatility(returns)
}

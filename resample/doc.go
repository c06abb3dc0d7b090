// SPDX-License-Identifier: MIT

// Package resample provides methods that derive new price series from an
// observed one.
//
// Every method implements
//
//	Resample(series []float64, length int, rng *rand.Rand) ([]float64, error)
//
// and draws all randomness from rng, so results are reproducible.
//
// Block bootstraps (resample observed data):
//
//   - Stationary — Politis–Romano stationary bootstrap. Blocks start at
//     uniform positions and have geometric lengths with mean MeanBlock,
//     wrapping circularly. MeanBlock 0 selects it automatically
//     (OptimalBlockLength, Politis–White).
//   - Circular   — fixed-length circular blocks.
//   - IID        — single-point blocks (Efron bootstrap).
//
// Block bootstraps work in one of two domains:
//
//   - ReturnsDomain (default): resample log returns, recompound from the
//     first price. The return distribution, and so the volatility, of the
//     output matches the source.
//   - LevelDomain: resample the price values directly.
//
// Parametric:
//
//   - GBM — log-normal random walk calibrated on the series.
//
// Methods are selected by name through a Registry (Builtin() holds the
// four above). Unknown names fail with ErrUnsupportedMethod.
//
// Determinism: NewRand(seed) and Stream(parent, i) give reproducible,
// independent *rand.Rand streams. A *rand.Rand must not be shared between
// goroutines.
package resample

// SPDX-License-Identifier: MIT

// Package scenario generates batches of synthetic instruments from one seed
// instrument.
//
//	seed, _ := instrument.New(prices, "AAPL")
//	batch, err := scenario.Factory(ctx, seed, resample.Stationary{}, 1000,
//		scenario.WithSeed(42))
//
// Each generated instrument has the seed's name, a price path resampled
// from the seed's prices and a volatility estimated from that path (the
// seed's volatility is never copied).
//
// Generation runs in parallel (WithWorkers) but is fully deterministic:
// sample i always uses stream i of the batch seed, so the batch is the
// same for any number of workers.
//
// Factory is fail-fast. If any sample fails, the whole batch is discarded
// and ErrGeneration is returned: aggregates over a partial batch (such as
// the mean volatility) have no meaning.
package scenario

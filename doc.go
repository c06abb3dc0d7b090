// SPDX-License-Identifier: MIT

// Package lvboot is an in-memory toolkit for modelling priced instruments
// and generating synthetic market scenarios from them by resampling.
//
// What is inside:
//
//	instrument/ — immutable Instrument values: prices, name, drift, volatility
//	resample/   — resampling methods (Stationary, Circular, IID, GBM),
//	              a method Registry and deterministic RNG streams
//	scenario/   — the Generator: one seed instrument in, a Batch of
//	              resampled instruments out, built in parallel and fail-fast
//	logging/    — structured logging facade over zap
//	config/     — YAML configuration for the lvboot driver
//	marketdata/ — CSV price-column loader
//	cmd/lvboot  — command-line driver (generate, inspect, methods)
//
// Quick example:
//
//	seed, _ := instrument.New([]float64{12, 11, 14, 20, 12, 11, 20}, "AAPL")
//	batch, _ := scenario.Factory(ctx, seed, resample.Stationary{}, 1000,
//		scenario.WithSeed(42))
//	fmt.Println(batch.MeanVolatility(), batch.Summary().Volatility.Q95)
//
// Determinism: every random draw flows from an explicit seed. Two calls with
// the same seed, method and count yield identical batches whatever the
// number of workers.
//
//	go get github.com/katalvlaran/lvboot
package lvboot

// SPDX-License-Identifier: MIT
// Package: lvboot/scenario
//
// generator.go — the scenario factory.
//
// Algorithm (one Factory call):
//  1. Validate count ≥ 1, a valid seed and a non-nil method. If the method
//     is a resample.Resolver, fix its data-dependent parameters on the seed.
//  2. Draw one batch seed from the generator's base stream (under a mutex).
//  3. For each index i, in parallel with at most `workers` goroutines:
//     a. rng_i := resample.Stream(batchSeed, i)  (independent per sample);
//     b. path  := method.Resample(seed.Prices(), length, rng_i);
//     c. item_i := instrument.New(path, seed.Name()); volatility and drift
//        are re-estimated from the new path, never copied from the seed.
//  4. The first failure cancels the rest; the batch is discarded.
//
// Because every sample owns its stream, the batch depends only on
// (base seed, call order, method, count, length) and not on scheduling.
//
// Complexity: O(count · length) time, O(count · length) memory.

package scenario

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvboot/instrument"
	"github.com/katalvlaran/lvboot/resample"
)

// Generator produces scenario batches. It is safe for concurrent use.
type Generator struct {
	cfg generatorConfig

	mu   sync.Mutex
	base *rand.Rand // batch seeds; guarded by mu
}

// NewGenerator builds a Generator from options.
func NewGenerator(opts ...Option) *Generator {
	cfg := newGeneratorConfig(opts...)
	return &Generator{
		cfg:  cfg,
		base: resample.NewRand(cfg.seed),
	}
}

// Factory generates count instruments whose prices are resampled from seed
// with method m. The batch is in generation order; item i is named after
// the seed and carries its own estimated volatility.
//
// Successive calls on one Generator use fresh batch seeds; two Generators
// built with the same WithSeed produce the same sequence of batches.
//
// Errors:
//   - ErrInvalidInput: count < 1 or seed is not a valid instrument.
//   - ErrUnsupportedMethod: m is nil.
//   - ErrGeneration: a sample failed; no partial batch is returned.
//   - ctx.Err(): the context was cancelled first.
func (g *Generator) Factory(ctx context.Context, seed instrument.Instrument, m resample.Method, count int) (Batch, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if count < 1 {
		return Batch{}, fmt.Errorf("%s: count %d must be ≥ 1: %w", methodFactory, count, ErrInvalidInput)
	}
	if !seed.Valid() {
		return Batch{}, fmt.Errorf("%s: seed instrument is not initialized: %w", methodFactory, ErrInvalidInput)
	}
	if m == nil {
		return Batch{}, fmt.Errorf("%s: nil method: %w", methodFactory, ErrUnsupportedMethod)
	}

	length := g.cfg.length
	if length == 0 {
		length = seed.Len()
	}
	prices := seed.Prices()
	// Data-dependent parameters are estimated once for the whole batch.
	if r, ok := m.(resample.Resolver); ok {
		if resolved := r.Resolve(prices); resolved != nil {
			m = resolved
		}
	}
	batchSeed := g.nextBatchSeed()

	log := g.cfg.logger.With("instrument", seed.Name(), "method", m.Name(), "count", count)
	log.Debug("generating scenario batch",
		"length", length,
		"workers", g.cfg.workers,
		"batch_seed", batchSeed,
	)
	started := time.Now()

	opts := []instrument.Option{instrument.WithReturnKind(seed.ReturnKind())}
	items := make([]instrument.Instrument, count)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.workers)
	for i := 0; i < count; i++ {
		if egCtx.Err() != nil {
			break
		}
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			item, err := sample(prices, seed.Name(), m, length, resample.Stream(batchSeed, uint64(i)), opts)
			if err != nil {
				return fmt.Errorf("%s: sample %d: %w", methodFactory, i, err)
			}
			items[i] = item
			return nil
		})
	}

	err := eg.Wait()
	// Scheduling stops early on cancellation, so Wait alone may report nil.
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Warn("scenario batch cancelled", "error", ctxErr)
		return Batch{}, ctxErr
	}
	if err != nil {
		log.Error("scenario batch failed", "error", err)
		return Batch{}, err
	}

	log.Debug("scenario batch ready", "elapsed", time.Since(started))
	return Batch{name: seed.Name(), method: m.Name(), items: items}, nil
}

// FactoryByName resolves name through the generator's registry and calls
// Factory. Unknown names fail with ErrUnsupportedMethod.
func (g *Generator) FactoryByName(ctx context.Context, seed instrument.Instrument, name string, count int) (Batch, error) {
	m, err := g.cfg.registry.Lookup(name)
	if err != nil {
		return Batch{}, fmt.Errorf("%s: %w", methodFactoryByName, err)
	}
	return g.Factory(ctx, seed, m, count)
}

// Factory is a one-shot helper: NewGenerator(opts...).Factory(...).
func Factory(ctx context.Context, seed instrument.Instrument, m resample.Method, count int, opts ...Option) (Batch, error) {
	return NewGenerator(opts...).Factory(ctx, seed, m, count)
}

// FactoryByName is a one-shot helper: NewGenerator(opts...).FactoryByName(...).
func FactoryByName(ctx context.Context, seed instrument.Instrument, name string, count int, opts ...Option) (Batch, error) {
	return NewGenerator(opts...).FactoryByName(ctx, seed, name, count)
}

// nextBatchSeed advances the base stream once.
func (g *Generator) nextBatchSeed() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.base.Int63()
}

// sample produces one instrument. Resample errors keep their sentinel in
// the chain; instrument errors are flattened so a bad path is never
// mistaken for bad caller input.
func sample(prices []float64, name string, m resample.Method, length int, rng *rand.Rand, opts []instrument.Option) (instrument.Instrument, error) {
	path, err := m.Resample(prices, length, rng)
	if err != nil {
		return instrument.Instrument{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	if len(path) != length {
		return instrument.Instrument{}, fmt.Errorf("%w: %s produced %d prices, want %d",
			ErrGeneration, m.Name(), len(path), length)
	}
	item, err := instrument.New(path, name, opts...)
	if err != nil {
		return instrument.Instrument{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return item, nil
}

// SPDX-License-Identifier: MIT
// Package: lvboot/resample
//
// rng.go — deterministic RNG streams shared by the methods and the scenario
// generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical paths across runs and platforms.
//   - Independence: per-sample streams are derived by index, never shared,
//     so parallel generation does not depend on scheduling.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Give each worker its own stream.
package resample

import "math/rand"

// DefaultSeed is used when a caller passes seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with the SplitMix64 finalizer, so neighbouring stream ids give
// uncorrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Stream returns the independent stream number `stream` under parent.
func Stream(parent int64, stream uint64) *rand.Rand {
	return NewRand(DeriveSeed(parent, stream))
}

// rngOr returns r, or the default stream when r is nil.
func rngOr(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return NewRand(0)
}

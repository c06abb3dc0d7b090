// SPDX-License-Identifier: MIT
// Package: lvboot/scenario
//
// options.go — functional options for NewGenerator.
//
// Contract:
//   • Option constructors panic on meaningless values (negative sizes, nil
//     collaborators). Factory itself never panics.
//   • Defaults: seed resample.DefaultSeed, workers GOMAXPROCS, length = seed
//     length, no-op logger, resample.Builtin() registry.

package scenario

import (
	"runtime"

	"github.com/katalvlaran/lvboot/logging"
	"github.com/katalvlaran/lvboot/resample"
)

// Option customizes a Generator.
type Option func(*generatorConfig)

// generatorConfig is resolved once per Generator.
type generatorConfig struct {
	seed     int64
	workers  int
	length   int // 0 ⇒ seed length
	logger   logging.Logger
	registry *resample.Registry
}

func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		seed:    resample.DefaultSeed,
		workers: 0,
		length:  0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers == 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}
	if cfg.registry == nil {
		cfg.registry = resample.Builtin()
	}
	return cfg
}

// WithSeed fixes the base seed (0 ⇒ resample.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.seed = seed
	}
}

// WithWorkers bounds the number of samples generated concurrently.
// 0 means runtime.GOMAXPROCS(0). Panics if n < 0.
// Results do not depend on n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("scenario: WithWorkers(n<0)")
	}
	return func(c *generatorConfig) {
		c.workers = n
	}
}

// WithLength sets the number of prices per generated instrument.
// 0 means "same as the seed". Panics if n < 0.
func WithLength(n int) Option {
	if n < 0 {
		panic("scenario: WithLength(n<0)")
	}
	return func(c *generatorConfig) {
		c.length = n
	}
}

// WithLogger routes generator logs to l. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("scenario: WithLogger(nil)")
	}
	return func(c *generatorConfig) {
		c.logger = l
	}
}

// WithRegistry sets the registry used by FactoryByName. Panics on nil.
func WithRegistry(r *resample.Registry) Option {
	if r == nil {
		panic("scenario: WithRegistry(nil)")
	}
	return func(c *generatorConfig) {
		c.registry = r
	}
}

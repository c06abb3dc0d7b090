// SPDX-License-Identifier: MIT
// Package: lvboot/instrument
//
// options.go — functional options for New.
//
// Contract:
//   • Options only record values; New validates them against the data and
//     reports ErrInvalidInput (caller data may legitimately be bad).
//   • WithReturnKind panics on an undeclared kind: that is a programmer error.
//   • Later options override earlier ones.

package instrument

// Option customizes New.
type Option func(*config)

// config aggregates the optional construction knobs.
type config struct {
	drift      *float64
	volatility *float64
	kind       ReturnKind
}

// newConfig applies opts in order over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{kind: LogReturns}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDrift supplies the drift instead of estimating it from the returns.
// A supplied drift is kept by WithPrices.
func WithDrift(mu float64) Option {
	return func(c *config) {
		c.drift = &mu
	}
}

// WithVolatility supplies the volatility instead of estimating it.
// The value is stored exactly as given; New rejects negative or
// non-finite values with ErrInvalidInput.
func WithVolatility(sigma float64) Option {
	return func(c *config) {
		c.volatility = &sigma
	}
}

// WithReturnKind selects the return definition for the estimators.
// Panics on an undeclared ReturnKind.
func WithReturnKind(k ReturnKind) Option {
	if !k.valid() {
		panic("instrument: WithReturnKind(unknown kind)")
	}
	return func(c *config) {
		c.kind = k
	}
}

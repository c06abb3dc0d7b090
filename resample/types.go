// SPDX-License-Identifier: MIT
// Package: lvboot/resample

package resample

import "math/rand"

// Method derives a new series from a source series.
//
// Resample returns a fresh slice of exactly length points (length <= 0
// means len(series)). All randomness MUST come from rng so that equal
// seeds give equal paths; a nil rng selects the default deterministic
// stream. Implementations must not modify series and must be safe for
// concurrent use with distinct rng values.
type Method interface {
	Name() string
	Resample(series []float64, length int, rng *rand.Rand) ([]float64, error)
}

// Resolver is implemented by methods whose parameters can be derived from
// the source series (automatic block lengths, GBM calibration). Resolve
// returns an equivalent method with those parameters fixed, so that
// Resample on the same series gives the same output for the same rng
// without repeating the estimation. Methods that cannot resolve (bad
// series, explicit parameters) return themselves unchanged; Resample then
// reports the error as usual.
//
// Callers that resample one series many times, like a scenario batch,
// resolve once up front.
type Resolver interface {
	Resolve(series []float64) Method
}

// Domain selects what the block bootstraps resample.
type Domain int

const (
	// ReturnsDomain resamples the log returns of the series and recompounds
	// them from the first value. Requires strictly positive input; the
	// output's return distribution is the source's.
	ReturnsDomain Domain = iota

	// LevelDomain resamples the values themselves. Every output value is a
	// source value; block joins introduce jumps between levels.
	LevelDomain
)

// String implements fmt.Stringer.
func (d Domain) String() string {
	switch d {
	case ReturnsDomain:
		return "returns"
	case LevelDomain:
		return "levels"
	default:
		return "unknown"
	}
}

// Canonical method names, as registered by Builtin.
const (
	NameStationary = "Stationary"
	NameCircular   = "Circular"
	NameIID        = "IID"
	NameGBM        = "GBM"
)

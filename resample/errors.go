// SPDX-License-Identifier: MIT
// Package: lvboot/resample
//
// errors.go — sentinel errors for resampling methods and the registry.
//
// Error policy:
//   • Callers branch with errors.Is; messages are stable.
//   • Methods wrap a sentinel with "<Method>: <detail>: %w".
//   • Resample never panics; option-like struct fields are validated on use.

package resample

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMethod indicates an unknown method name or a nil Method.
var ErrUnsupportedMethod = errors.New("resample: unsupported method")

// ErrSeriesTooShort indicates a source series with fewer than two points.
var ErrSeriesTooShort = errors.New("resample: series too short")

// ErrBadSeries indicates a source value the chosen domain cannot use
// (non-finite values, or non-positive prices in the returns domain).
var ErrBadSeries = errors.New("resample: bad series value")

// ErrBadParameter indicates a meaningless method parameter
// (MeanBlock in (0,1), negative Block, negative volatility, ...).
var ErrBadParameter = errors.New("resample: bad parameter")

// ErrDegenerate indicates that a resample could not produce a usable path:
// a requested length of one point, or a path containing NaN/Inf.
var ErrDegenerate = errors.New("resample: degenerate output")

// ErrDuplicateMethod indicates Register was called twice for one name.
var ErrDuplicateMethod = errors.New("resample: method already registered")

// errorf wraps sentinel with the method name and a formatted detail.
func errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

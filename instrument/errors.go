// SPDX-License-Identifier: MIT
// Package: lvboot/instrument
//
// errors.go — sentinel errors for the instrument package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method + offending value) is attached with %w at the call site.
//   • Constructors never panic; option constructors panic on programmer errors.

package instrument

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates malformed construction input: fewer than two
// prices, a non-finite or non-positive price, an empty name, or a supplied
// drift/volatility that is not a finite number (volatility must also be ≥ 0).
// Usage: if errors.Is(err, ErrInvalidInput) { /* reject the series */ }.
var ErrInvalidInput = errors.New("instrument: invalid input")

// Method names used as error prefixes.
const (
	methodNew        = "New"
	methodWithPrices = "WithPrices"
)

// invalidf wraps ErrInvalidInput with the method name and a formatted detail.
func invalidf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidInput)
}

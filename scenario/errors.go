// SPDX-License-Identifier: MIT
// Package: lvboot/scenario
//
// errors.go — error taxonomy of the generator.
//
//   • ErrInvalidInput      — bad count or seed instrument (same sentinel as
//                            instrument.ErrInvalidInput).
//   • ErrUnsupportedMethod — nil method or unknown name (same sentinel as
//                            resample.ErrUnsupportedMethod).
//   • ErrGeneration        — one sample failed; the whole batch is dropped.
//                            Resample causes stay reachable with errors.Is
//                            (e.g. resample.ErrDegenerate).
//
// Context cancellation is returned as the context's own error.

package scenario

import (
	"errors"

	"github.com/katalvlaran/lvboot/instrument"
	"github.com/katalvlaran/lvboot/resample"
)

// ErrInvalidInput indicates a non-positive count or an invalid seed.
var ErrInvalidInput = instrument.ErrInvalidInput

// ErrUnsupportedMethod indicates a nil method or an unregistered name.
var ErrUnsupportedMethod = resample.ErrUnsupportedMethod

// ErrGeneration indicates that a sample could not be turned into a valid
// instrument. Factory never returns a partial batch alongside it.
var ErrGeneration = errors.New("scenario: generation failed")

const (
	methodFactory       = "Factory"
	methodFactoryByName = "FactoryByName"
)

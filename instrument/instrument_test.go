// SPDX-License-Identifier: MIT

package instrument_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvboot/instrument"
)

const tol = 1e-12

var aapl = []float64{12, 11, 14, 20, 12, 11, 20}

// TestNew_EstimatesVolatilityAndDrift checks the documented estimators
// against hand-computed values (sample std and mean of log returns).
func TestNew_EstimatesVolatilityAndDrift(t *testing.T) {
	inst, err := instrument.New(aapl, "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", inst.Name())
	assert.Equal(t, 7, inst.Len())
	assert.InDelta(t, 0.3937967852718412, inst.Volatility(), tol)
	assert.InDelta(t, 0.08513760396099841, inst.Drift(), tol)
	assert.False(t, inst.VolatilitySupplied())
	assert.False(t, inst.DriftSupplied())
	assert.Equal(t, instrument.LogReturns, inst.ReturnKind())
	assert.True(t, inst.Valid())
}

func TestNew_SimpleReturns(t *testing.T) {
	inst, err := instrument.New(aapl, "AAPL", instrument.WithReturnKind(instrument.SimpleReturns))
	require.NoError(t, err)
	assert.InDelta(t, 0.4359025054948739, inst.Volatility(), tol)
	assert.InDelta(t, 0.15880230880230878, inst.Drift(), tol)
}

// TestNew_Deterministic verifies the estimator is reproducible for equal input.
func TestNew_Deterministic(t *testing.T) {
	a, err := instrument.New(aapl, "AAPL")
	require.NoError(t, err)
	b, err := instrument.New(aapl, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, a.Volatility(), b.Volatility())
	assert.Equal(t, a.Drift(), b.Drift())
}

// TestNew_SuppliedValuesKeptExactly ensures explicit figures are never re-estimated.
func TestNew_SuppliedValuesKeptExactly(t *testing.T) {
	inst, err := instrument.New(aapl, "AAPL",
		instrument.WithVolatility(1),
		instrument.WithDrift(-1),
	)
	require.NoError(t, err)
	assert.Equal(t, 1.0, inst.Volatility())
	assert.Equal(t, -1.0, inst.Drift())
	assert.True(t, inst.VolatilitySupplied())
	assert.True(t, inst.DriftSupplied())

	zero, err := instrument.New(aapl, "AAPL", instrument.WithVolatility(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero.Volatility())
}

func TestNew_TwoPricesHaveZeroVolatility(t *testing.T) {
	inst, err := instrument.New([]float64{100, 110}, "X")
	require.NoError(t, err)
	assert.Equal(t, 0.0, inst.Volatility())
	assert.InDelta(t, math.Log(1.1), inst.Drift(), tol)
}

func TestNew_InvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		prices []float64
		label  string
		opts   []instrument.Option
	}{
		{"nil prices", nil, "A", nil},
		{"single price", []float64{10}, "A", nil},
		{"empty name", []float64{1, 2}, "", nil},
		{"zero price", []float64{1, 0, 2}, "A", nil},
		{"negative price", []float64{1, -2}, "A", nil},
		{"NaN price", []float64{1, math.NaN()}, "A", nil},
		{"Inf price", []float64{math.Inf(1), 1}, "A", nil},
		{"negative volatility", []float64{1, 2}, "A", []instrument.Option{instrument.WithVolatility(-0.1)}},
		{"NaN volatility", []float64{1, 2}, "A", []instrument.Option{instrument.WithVolatility(math.NaN())}},
		{"Inf drift", []float64{1, 2}, "A", []instrument.Option{instrument.WithDrift(math.Inf(-1))}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := instrument.New(tc.prices, tc.label, tc.opts...)
			assert.ErrorIs(t, err, instrument.ErrInvalidInput)
		})
	}
}

func TestWithReturnKind_PanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() { instrument.WithReturnKind(instrument.ReturnKind(42)) })
}

// TestNew_CopiesPrices checks that the caller's slice is not aliased.
func TestNew_CopiesPrices(t *testing.T) {
	src := []float64{1, 2, 3}
	inst, err := instrument.New(src, "A")
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, []float64{1, 2, 3}, inst.Prices())

	out := inst.Prices()
	out[1] = 99
	assert.Equal(t, []float64{1, 2, 3}, inst.Prices())
}

// TestWithPrices_DoesNotMutateReceiver is the rebuild-on-modification contract.
func TestWithPrices_DoesNotMutateReceiver(t *testing.T) {
	orig, err := instrument.New([]float64{1, 2, 3, 4, 5, 6, 7, 8}, "APPL")
	require.NoError(t, err)
	origVol := orig.Volatility()
	origPrices := orig.Prices()

	next, err := orig.WithPrices(aapl)
	require.NoError(t, err)

	assert.Equal(t, origPrices, orig.Prices())
	assert.Equal(t, origVol, orig.Volatility())
	assert.InDelta(t, 0.1977025958709788, orig.Volatility(), tol)

	assert.Equal(t, "APPL", next.Name())
	assert.Equal(t, aapl, next.Prices())
	assert.InDelta(t, 0.3937967852718412, next.Volatility(), tol)
}

func TestWithPrices_KeepsConventions(t *testing.T) {
	orig, err := instrument.New(aapl, "AAPL",
		instrument.WithDrift(0.5),
		instrument.WithVolatility(7),
		instrument.WithReturnKind(instrument.SimpleReturns),
	)
	require.NoError(t, err)

	next, err := orig.WithPrices([]float64{100, 101, 99, 102})
	require.NoError(t, err)

	assert.Equal(t, 0.5, next.Drift(), "supplied drift survives")
	assert.True(t, next.DriftSupplied())
	assert.False(t, next.VolatilitySupplied(), "volatility is re-estimated")
	assert.InDelta(t, 0.025202126697692503, next.Volatility(), tol)
	assert.Equal(t, instrument.SimpleReturns, next.ReturnKind())
}

func TestWithPrices_InvalidInput(t *testing.T) {
	orig, err := instrument.New(aapl, "AAPL")
	require.NoError(t, err)

	_, err = orig.WithPrices([]float64{5})
	assert.ErrorIs(t, err, instrument.ErrInvalidInput)

	var zero instrument.Instrument
	_, err = zero.WithPrices(aapl)
	assert.ErrorIs(t, err, instrument.ErrInvalidInput, "zero value has no name")
}

func TestReturnsAndAccessors(t *testing.T) {
	inst, err := instrument.New([]float64{100, 110, 99}, "X")
	require.NoError(t, err)

	r := inst.Returns()
	require.Len(t, r, 2)
	assert.InDelta(t, math.Log(1.1), r[0], tol)
	assert.InDelta(t, math.Log(0.9), r[1], tol)
	assert.Equal(t, 100.0, inst.First())
	assert.Equal(t, 99.0, inst.Last())

	assert.Nil(t, instrument.Returns([]float64{1}, instrument.LogReturns))
	assert.Equal(t, 0.0, instrument.EstimateVolatility([]float64{0.3}))
	assert.Equal(t, 0.0, instrument.EstimateDrift(nil))
}

func TestAnnualized(t *testing.T) {
	inst, err := instrument.New(aapl, "AAPL", instrument.WithVolatility(0.01))
	require.NoError(t, err)
	assert.InDelta(t, 0.01*math.Sqrt(252), inst.Annualized(252), tol)
	assert.Equal(t, 0.0, inst.Annualized(0))
}

func TestZeroValue(t *testing.T) {
	var zero instrument.Instrument
	assert.False(t, zero.Valid())
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, 0.0, zero.Last())
	assert.Empty(t, zero.Prices())
}

// SPDX-License-Identifier: MIT

package instrument_test

import (
	"fmt"

	"github.com/katalvlaran/lvboot/instrument"
)

// ExampleNew builds an instrument and lets the volatility be estimated.
func ExampleNew() {
	inst, err := instrument.New([]float64{12, 11, 14, 20, 12, 11, 20}, "AAPL")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s %.4f\n", inst.Name(), inst.Volatility())
	// Output:
	// AAPL 0.3938
}

// ExampleInstrument_WithPrices shows rebuild-on-modification.
func ExampleInstrument_WithPrices() {
	a, _ := instrument.New([]float64{1, 2, 3, 4, 5, 6, 7, 8}, "APPL")
	b, _ := a.WithPrices([]float64{12, 11, 14, 20, 12, 11, 20})
	fmt.Printf("%.4f %.4f\n", a.Volatility(), b.Volatility())
	// Output:
	// 0.1977 0.3938
}

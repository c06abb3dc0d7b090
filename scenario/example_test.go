// SPDX-License-Identifier: MIT

package scenario_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvboot/instrument"
	"github.com/katalvlaran/lvboot/resample"
	"github.com/katalvlaran/lvboot/scenario"
)

// ExampleFactory generates 1000 stationary-bootstrap variants of a seed.
func ExampleFactory() {
	seed, err := instrument.New([]float64{12, 11, 14, 20, 12, 11, 20}, "AAPL")
	if err != nil {
		fmt.Println(err)
		return
	}

	batch, err := scenario.Factory(context.Background(), seed, resample.Stationary{}, 1000,
		scenario.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(batch.Len(), batch.Name(), batch.At(0).Len())
	// Output:
	// 1000 AAPL 7
}

// ExampleGenerator_FactoryByName selects the method by name.
func ExampleGenerator_FactoryByName() {
	seed, _ := instrument.New([]float64{100, 101, 99, 102}, "XYZ")
	g := scenario.NewGenerator(scenario.WithSeed(1), scenario.WithLength(10))

	_, err := g.FactoryByName(context.Background(), seed, "NotAMethod", 5)
	fmt.Println(err != nil)

	batch, _ := g.FactoryByName(context.Background(), seed, "circular", 5)
	fmt.Println(batch.Method(), batch.Len(), batch.At(4).Len())
	// Output:
	// true
	// Circular 5 10
}

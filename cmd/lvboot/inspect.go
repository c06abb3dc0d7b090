// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/katalvlaran/lvboot/instrument"
)

type inspectCmd struct {
	src            sourceFlags
	periodsPerYear float64
}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "print drift and volatility of a price series" }
func (*inspectCmd) Usage() string {
	return `lvboot inspect -csv <file> [-column <name>] [-name <name>] [-simple] [-annualize n]

  Loads one price column and prints its length, drift and volatility.
`
}

func (c *inspectCmd) SetFlags(f *flag.FlagSet) {
	c.src.register(f)
	f.Float64Var(&c.periodsPerYear, "annualize", 252, "periods per year for the annualized volatility (0 to hide)")
}

func (c *inspectCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inst, err := c.src.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printInstrument(os.Stdout, inst, c.periodsPerYear)
	return subcommands.ExitSuccess
}

func printInstrument(out io.Writer, inst instrument.Instrument, periodsPerYear float64) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "name\t%s\n", inst.Name())
	fmt.Fprintf(w, "length\t%d\n", inst.Len())
	fmt.Fprintf(w, "first / last\t%g / %g\n", inst.First(), inst.Last())
	fmt.Fprintf(w, "drift\t%.6f\n", inst.Drift())
	fmt.Fprintf(w, "volatility\t%.6f\n", inst.Volatility())
	if periodsPerYear > 0 {
		fmt.Fprintf(w, "annualized\t%.6f\n", inst.Annualized(periodsPerYear))
	}
	w.Flush()
}

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

	"github.com/katalvlaran/lvboot/config"
	"github.com/katalvlaran/lvboot/logging"
	"github.com/katalvlaran/lvboot/resample"
	"github.com/katalvlaran/lvboot/scenario"
)

// generateCmd holds the flags for the 'generate' subcommand. Flags given on
// the command line override the configuration file.
type generateCmd struct {
	src        sourceFlags
	configFile string
	method     string
	count      int
	seed       int64
	logLevel   string
	logFormat  string
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate bootstrap variants of a price series" }
func (*generateCmd) Usage() string {
	return `lvboot generate -csv <file> [-column <name>] [-name <name>] [-simple] [-config <yaml>]
                [-method <name>] [-n count] [-seed s] [-log-level l] [-log-format f]

  Resamples the price series into a batch of synthetic instruments and prints
  the seed volatility next to the distribution of variant volatilities and
  terminal prices.
`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	c.src.register(f)
	f.StringVar(&c.configFile, "config", "", "YAML configuration file")
	f.StringVar(&c.method, "method", "", "resampling method (see 'lvboot methods')")
	f.IntVar(&c.count, "n", 0, "number of variants")
	f.Int64Var(&c.seed, "seed", 0, "base random seed")
	f.StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.StringVar(&c.logFormat, "log-format", "", "log format (dev, json)")
}

func (c *generateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.loadConfig(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	seed, err := c.src.load()
	if err != nil {
		logger.Error("Failed to load seed instrument", "file", c.src.csv, "error", err)
		return subcommands.ExitFailure
	}

	m, err := cfg.ResolveMethod(resample.Builtin())
	if err != nil {
		logger.Error("Failed to resolve method", "method", cfg.Method, "error", err)
		return subcommands.ExitUsageError
	}

	gen := scenario.NewGenerator(append(cfg.GeneratorOptions(), scenario.WithLogger(logger))...)

	logger.Info("Generating scenarios", "instrument", seed.Name(), "method", m.Name(), "count", cfg.Count)
	batch, err := gen.Factory(ctx, seed, m, cfg.Count)
	if err != nil {
		logger.Error("Scenario generation failed", "error", err)
		return subcommands.ExitFailure
	}

	printSummary(os.Stdout, seed.Volatility(), batch.Summary())
	return subcommands.ExitSuccess
}

// loadConfig reads the configuration file, or the defaults, and applies the
// flags that were set explicitly.
func (c *generateCmd) loadConfig(f *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if c.configFile != "" {
		var err error
		if cfg, err = config.LoadFile(c.configFile); err != nil {
			return config.Config{}, err
		}
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "method":
			cfg.Method = c.method
		case "n":
			cfg.Count = c.count
		case "seed":
			cfg.Seed = c.seed
		case "log-level":
			cfg.Log.Level = c.logLevel
		case "log-format":
			cfg.Log.Format = c.logFormat
		}
	})
	return cfg, cfg.Validate()
}

func printSummary(out io.Writer, seedVolatility float64, s scenario.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s / %s, %d variants\t\t\t\t\t\t\t\n", s.Name, s.Method, s.Count)
	fmt.Fprintf(w, "seed volatility\t%.6f\t\t\t\t\t\t\n", seedVolatility)
	fmt.Fprintln(w, "\tmean\tstd\tmin\tq05\tmedian\tq95\tmax\t")
	row := func(label string, st scenario.Stats) {
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t\n",
			label, st.Mean, st.StdDev, st.Min, st.Q05, st.Median, st.Q95, st.Max)
	}
	row("volatility", s.Volatility)
	row("terminal price", s.TerminalPrice)
	w.Flush()
}

// SPDX-License-Identifier: MIT

// Command lvboot generates bootstrap scenarios from a CSV price history.
//
//	lvboot methods
//	lvboot inspect  -csv aapl.csv -column "Adj Close" -name AAPL
//	lvboot generate -csv aapl.csv -column "Adj Close" -name AAPL -config lvboot.yaml
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

var commands = []subcommands.Command{
	&generateCmd{},
	&inspectCmd{},
	&methodsCmd{},
}

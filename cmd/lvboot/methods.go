// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/katalvlaran/lvboot/resample"
)

type methodsCmd struct{}

func (*methodsCmd) Name() string             { return "methods" }
func (*methodsCmd) Synopsis() string         { return "list the resampling methods" }
func (*methodsCmd) Usage() string            { return "lvboot methods\n" }
func (*methodsCmd) SetFlags(_ *flag.FlagSet) {}

func (*methodsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, name := range resample.Builtin().Names() {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type netCmd struct{}

func (*netCmd) Name() string     { return "net" }
func (*netCmd) Synopsis() string { return "display the net position: the cash you could put on the table" }
func (*netCmd) Usage() string {
	return `nw net

  Displays the net position and how every asset contributes to it.
  See 'nw topic net' for details.
`
}

func (c *netCmd) SetFlags(f *flag.FlagSet) {}

func (c *netCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets, err := DecodeAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderPosition(renderer.NewPosition(assets, Global.Currency)))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type lsCmd struct{}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list assets" }
func (*lsCmd) Usage() string {
	return `nw ls

  Lists every asset with its slug, amount and liquidity policy.
`
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {}

func (c *lsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets, err := DecodeAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderAssets(renderer.NewAssetList(assets, Global.Currency)))
	return subcommands.ExitSuccess
}

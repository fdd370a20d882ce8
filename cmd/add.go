package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type addCmd struct {
	assetFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an asset" }
func (*addCmd) Usage() string {
	return `nw add [-type <type>] [-label <label>] [-amount <amount>] [flags]

  Adds an asset. Its slug is derived from the label and made unique. Fields
  not set on the command line get default values.

Usage Examples:
# Adds a sellable house with its mortgage.
$ nw add -type house -label "Current House" -amount 720000 -loan -425000 -repayments 2400 -frequency fortnightly

# Adds savings, keeping 5000 aside.
$ nw add -label Savings -amount 60000 -liquidity keep:5000

`
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := networth.ParseAssetType(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	asset, err := c.apply(f, networth.NewAsset(t, Global.Currency), Global.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	assets, err := DecodeAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		return subcommands.ExitFailure
	}
	assets, created := assets.Create(asset)
	if err := EncodeAssets(assets); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving assets: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s %q as %q\n", created.Type(), created.Details().Label, created.Details().Slug)
	return subcommands.ExitSuccess
}

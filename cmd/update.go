package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type updateCmd struct {
	assetFlags
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update an asset" }
func (*updateCmd) Usage() string {
	return `nw update [flags] <slug>

  Updates the asset identified by its slug. Only the fields set on the command
  line change, the slug never does. Changing the -type keeps the label and the
  amount, other fields get default values.

Usage Examples:
# The house is no longer for sale.
$ nw update -can-sell=false current-house

`
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: update requires exactly one asset slug")
		return subcommands.ExitUsageError
	}
	slug := f.Arg(0)

	assets, err := DecodeAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		return subcommands.ExitFailure
	}
	asset, ok := assets.Find(slug)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no asset %q, see 'nw ls'\n", slug)
		return subcommands.ExitFailure
	}

	if isSet(f, "type") {
		t, err := networth.ParseAssetType(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		asset = convert(asset, t, Global.Currency)
	}
	asset, err = c.apply(f, asset, Global.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	assets, _ = assets.Update(slug, asset)
	if err := EncodeAssets(assets); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving assets: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %q\n", slug)
	return subcommands.ExitSuccess
}

// isSet reports whether the flag name was set on the command line.
func isSet(f *flag.FlagSet, name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

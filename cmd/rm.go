package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove assets" }
func (*rmCmd) Usage() string {
	return `nw rm <slug>...

  Removes the assets identified by their slugs.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: rm requires at least one asset slug")
		return subcommands.ExitUsageError
	}

	assets, err := DecodeAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, slug := range f.Args() {
		var ok bool
		if assets, ok = assets.Remove(slug); !ok {
			fmt.Fprintf(os.Stderr, "Error: no asset %q, see 'nw ls'\n", slug)
			return subcommands.ExitFailure
		}
	}
	if err := EncodeAssets(assets); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving assets: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %d assets\n", f.NArg())
	return subcommands.ExitSuccess
}

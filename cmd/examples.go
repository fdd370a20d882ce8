package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type examplesCmd struct{}

func (*examplesCmd) Name() string     { return "examples" }
func (*examplesCmd) Synopsis() string { return "list the example collections" }
func (*examplesCmd) Usage() string {
	return `nw examples

  Lists the ready made collections of assets. See 'nw use'.
`
}

func (c *examplesCmd) SetFlags(f *flag.FlagSet) {}

func (c *examplesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RenderExamples(renderer.NewExampleList(Global.Currency)))
	return subcommands.ExitSuccess
}

type useCmd struct {
	force bool
}

func (*useCmd) Name() string     { return "use" }
func (*useCmd) Synopsis() string { return "replace the assets with an example collection" }
func (*useCmd) Usage() string {
	return `nw use [-f] <example>

  Writes an example collection into the assets file. The example is named by
  its label, its slug or its position in 'nw examples'.

Usage Examples:
$ nw use upsizing

`
}

func (c *useCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Overwrite an existing assets file")
}

func (c *useCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: use requires exactly one example name")
		return subcommands.ExitUsageError
	}
	e, err := networth.FindExample(Global.Currency, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v, see 'nw examples'\n", err)
		return subcommands.ExitUsageError
	}

	if _, err := os.Stat(Global.AssetsFile); !c.force && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: %q already exists, use -f to overwrite it\n", Global.AssetsFile)
		return subcommands.ExitFailure
	}
	if err := EncodeAssets(e.Assets); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving assets: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Using the %q example in %s\n", e.Label, Global.AssetsFile)
	return subcommands.ExitSuccess
}

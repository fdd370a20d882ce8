package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the assets file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `nw fmt [-check]

  Validates and formats the assets file. Legacy liquidity forms are rewritten
  in their current form, and every asset is written in canonical JSONL.

Usage Examples:
# Fails if the assets file is not formatted.
$ nw fmt -check

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "Only check the format, do not rewrite the file")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	content, err := os.ReadFile(Global.AssetsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	formatted, err := format(content, Global.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is invalid: %v\n", Global.AssetsFile, err)
		return subcommands.ExitFailure
	}
	if bytes.Equal(content, formatted) {
		return subcommands.ExitSuccess
	}
	if c.check {
		fmt.Fprintf(os.Stderr, "%s is not formatted\n", Global.AssetsFile)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(Global.AssetsFile, formatted, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %s\n", Global.AssetsFile)
	return subcommands.ExitSuccess
}

// format decodes and re-encodes an assets file content.
func format(content []byte, currency string) ([]byte, error) {
	assets, err := networth.DecodeAssets(bytes.NewReader(content), currency)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := networth.EncodeAssets(&b, assets); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

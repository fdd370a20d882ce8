package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query assets with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `nw query <jsonpath>

  Evaluates a JSONPath expression against the array of assets, as stored in the
  assets file, and prints the result as JSON.

Usage Examples:
# Slugs of every house.
$ nw query '$[?(@.type=="house")].slug'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query requires exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	assets, err := DecodeAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := query(assets, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}

// query evaluates path against assets and returns the indented JSON result.
func query(assets networth.Assets, path string) ([]byte, error) {
	data, err := json.Marshal(assets)
	if err != nil {
		return nil, err
	}
	var jobj interface{}
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	res, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	return json.MarshalIndent(res, "", "  ")
}

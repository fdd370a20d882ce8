package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type affordCmd struct {
	ladder string
}

func (*affordCmd) Name() string     { return "afford" }
func (*affordCmd) Synopsis() string { return "display what house you could afford with higher repayments" }
func (*affordCmd) Usage() string {
	return `nw afford [-ladder <multipliers>]

  Projects the current mortgage repayments over a ladder of multipliers and
  displays the house you could afford for each of them.

Usage Examples:
# What could I afford by doubling or tripling my repayments?
$ nw afford -ladder 2,3
`
}

func (c *affordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ladder, "ladder", formatLadder(networth.DefaultLadder), "Comma separated repayment multipliers")
}

func (c *affordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ladder, err := parseLadder(c.ladder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -ladder: %v\n", err)
		return subcommands.ExitUsageError
	}

	assets, err := DecodeAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderAfford(renderer.NewAfford(assets, ladder, Global.Currency)))
	return subcommands.ExitSuccess
}

// parseLadder reads comma separated positive multipliers, in order.
func parseLadder(s string) ([]networth.Factor, error) {
	var ladder []networth.Factor
	for _, item := range strings.Split(s, ",") {
		k, err := networth.ParseFactor(strings.TrimSpace(item))
		if err != nil {
			return nil, err
		}
		if !k.GreaterThan(networth.F(0)) {
			return nil, fmt.Errorf("multiplier %s must be positive", k)
		}
		ladder = append(ladder, k)
	}
	return ladder, nil
}

func formatLadder(ladder []networth.Factor) string {
	items := make([]string, len(ladder))
	for i, k := range ladder {
		items[i] = k.String()
	}
	return strings.Join(items, ",")
}

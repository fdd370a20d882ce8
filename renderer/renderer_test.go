package renderer

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/etnz/networth"
)

func example(t *testing.T, name string) networth.Assets {
	t.Helper()
	e, err := networth.FindExample("AUD", name)
	if err != nil {
		t.Fatalf("FindExample(%q) error: %v", name, err)
	}
	return e.Assets
}

// checkContains fails for every want that is not in got.
func checkContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderPosition(t *testing.T) {
	md := RenderPosition(NewPosition(example(t, "Upsizing"), "AUD"))
	checkContains(t, md,
		"# Net Position",
		"Available: **$311k**",
		"| Current House | $720k (approx sale price) - $14.4k (agent fees) - $425k (loan) = $281k |",
		"| Offset | $25k from $35k |",
		"| VAS | $5k from $8k |",
	)
}

func TestRenderPosition_NotForSale(t *testing.T) {
	md := RenderPosition(NewPosition(example(t, "First Investment"), "AUD"))
	checkContains(t, md,
		"Available: **$215k**",
		"| _Current House_ | Not willing to sell |",
	)
}

func TestRenderPosition_Empty(t *testing.T) {
	md := RenderPosition(NewPosition(nil, "AUD"))
	checkContains(t, md, "Available: **$0**", "No assets yet.")
}

func TestRenderAfford(t *testing.T) {
	md := RenderAfford(NewAfford(example(t, "Upsizing"), networth.DefaultLadder, "AUD"))
	checkContains(t, md,
		"# I can afford",
		"Current repayments on Current House: **$5,200 p/m** for a -$425k loan, with a net position of $311k.",
		// 425000 + 310600 = 735600, less 5.5%
		"| Repayments x 1 | $695k | -$425k | $40.5k | $5,200 p/m |",
		"| Repayments x 1.5 | $896k | -$638k | $52.1k | $7,800 p/m |",
		"| Repayments x 2 | $1.1m | -$850k | $63.8k | $10,400 p/m |",
	)
}

func TestRenderAfford_Missing(t *testing.T) {
	md := RenderAfford(NewAfford(example(t, "First home"), networth.DefaultLadder, "AUD"))
	checkContains(t, md, "# I can afford", "Add a house with a loan and repayments")
	if strings.Contains(md, "Repayments x") {
		t.Errorf("RenderAfford() should not render scenarios, got:\n%s", md)
	}
}

func TestRenderAssets(t *testing.T) {
	md := RenderAssets(NewAssetList(example(t, "First Investment"), "AUD"))
	checkContains(t, md,
		"| current-house | house | Current House | $900k | not for sale | 0% |",
		"| offset | offset | Offset | $225k | $30k held back | 87% |",
		"| vas | shares | VAS | $65k | $20k spendable | 31% |",
	)
}

func TestRenderExamples(t *testing.T) {
	md := RenderExamples(NewExampleList("AUD"))
	checkContains(t, md,
		"| 1 | First home (`first-home`) | Purchasing your first home | $55k |",
		"| 2 | Upsizing (`upsizing`) | You have one home, want to move to a bigger one | $311k |",
		"| 4 | Second Investment (`second-investment`) |",
	)
}

func TestPolicy(t *testing.T) {
	testCases := []struct {
		asset networth.Asset
		want  string
	}{
		{networth.Misc{Info: networth.Info{Label: "Car"}, Liquidity: networth.PercentLiquid{Fraction: networth.F(0.4)}}, "40%"},
		{networth.Misc{Info: networth.Info{Label: "Car"}}, "all"},
		{networth.Shares{Info: networth.Info{Label: "VAS"}, Liquidity: networth.NotLiquid{}}, "none"},
		{networth.House{Info: networth.Info{Label: "Home"}, CanSell: true}, "less agent fees, all"},
		{networth.Loan{Info: networth.Info{Label: "Mortgage"}, Secures: "home"}, "secures home"},
	}
	for _, tc := range testCases {
		if got := Policy(tc.asset, "AUD"); got != tc.want {
			t.Errorf("Policy(%s) = %q, want %q", tc.asset.Details().Label, got, tc.want)
		}
	}
}

// TestTemplatesAreUsed makes sure every embedded template is referenced by a renderer.
func TestTemplatesAreUsed(t *testing.T) {
	used := map[string]bool{
		"position.md": true, "position_title.md": true, "position_assets.md": true,
		"afford.md": true, "afford_title.md": true, "afford_scenarios.md": true, "afford_missing.md": true,
		"assets.md": true, "examples.md": true,
	}
	files, err := fs.Glob(templates, "templates/*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		if !used[strings.TrimPrefix(f, "templates/")] {
			t.Errorf("template %q is not used", f)
		}
	}
	if len(files) != len(used) {
		t.Errorf("found %d templates, want %d", len(files), len(used))
	}
}

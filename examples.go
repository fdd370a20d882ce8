package networth

import (
	"fmt"
	"strings"
)

// Example is a named, ready made collection of assets.
type Example struct {
	Label       string
	Description string
	Assets      Assets
}

// Examples returns the catalog of example collections, with amounts in currency.
func Examples(currency string) []Example {
	m := func(v int) Money { return M(v, currency) }
	spendable := func(v int) Liquidity { return SpendableAmount{Amount: m(v)} }

	currentHouse := func(amount, loan, repayments int, freq Frequency, canSell bool) House {
		return House{
			Info:       Info{Label: "Current House", Slug: "current-house", Amount: m(amount)},
			Loan:       m(loan),
			Repayments: Repayments{Amount: m(repayments), Frequency: freq},
			CanSell:    canSell,
		}
	}

	return []Example{
		{
			Label:       "First home",
			Description: "Purchasing your first home",
			Assets: Assets{
				Misc{Info: Info{Label: "Savings", Slug: "savings", Amount: m(60000)}, Liquidity: RemainingAmount{Amount: m(5000)}},
			},
		},
		{
			Label:       "Upsizing",
			Description: "You have one home, want to move to a bigger one",
			Assets: Assets{
				currentHouse(720000, -425000, 2400, Fortnightly, true),
				Offset{Info: Info{Label: "Offset", Slug: "offset", Amount: m(35000)}, Liquidity: spendable(25000)},
				Shares{Info: Info{Label: "VAS", Slug: "vas", Amount: m(8000)}, Liquidity: spendable(5000)},
			},
		},
		{
			Label:       "First Investment",
			Description: "You have one home, want to buy an investment property",
			Assets: Assets{
				currentHouse(900000, -260000, 2100, Fortnightly, false),
				Offset{Info: Info{Label: "Offset", Slug: "offset", Amount: m(225000)}, Liquidity: RemainingAmount{Amount: m(30000)}},
				Shares{Info: Info{Label: "VAS", Slug: "vas", Amount: m(65000)}, Liquidity: spendable(20000)},
			},
		},
		{
			Label:       "Second Investment",
			Description: "You have one home and one investment property, and want to buy a second investment property",
			Assets: Assets{
				currentHouse(900000, -260000, 2100, Fortnightly, false),
				Offset{Info: Info{Label: "Offset", Slug: "offset", Amount: m(225000)}, Liquidity: RemainingAmount{Amount: m(30000)}},
				House{
					Info:       Info{Label: "1st Investment", Slug: "1st-investment", Amount: m(750000)},
					Loan:       m(-580000),
					Repayments: Repayments{Amount: m(6150), Frequency: Monthly},
				},
				Offset{Info: Info{Label: "Offset (investment)", Slug: "offset-investment", Amount: m(20000)}, Liquidity: AllLiquid{}},
				Shares{Info: Info{Label: "VAS", Slug: "vas", Amount: m(65000)}, Liquidity: spendable(20000)},
			},
		},
	}
}

// DefaultExample returns the example used to seed a brand new collection.
func DefaultExample(currency string) Example {
	return Examples(currency)[1]
}

// FindExample returns the example matching name, either its label (case
// insensitive), its slugified label, or its 1-based position in the catalog.
func FindExample(currency, name string) (Example, error) {
	examples := Examples(currency)
	for i, e := range examples {
		if strings.EqualFold(e.Label, name) || Slugify(e.Label) == name || fmt.Sprint(i+1) == name {
			return e, nil
		}
	}
	return Example{}, fmt.Errorf("unknown example %q", name)
}

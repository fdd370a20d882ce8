package networth

// AUD is a helper for test to create australian dollars from const
func AUD(v float64) Money { return M(v, "AUD") }

// misc is a helper for test to create a misc asset.
func misc(label string, amount float64, l Liquidity) Misc {
	return Misc{Info: Info{Label: label, Slug: Slugify(label), Amount: AUD(amount)}, Liquidity: l}
}

// house is a helper for test to create a sellable house without loan.
func house(label string, amount float64) House {
	return House{
		Info:       Info{Label: label, Slug: Slugify(label), Amount: AUD(amount)},
		Loan:       AUD(0),
		Repayments: Repayments{Amount: AUD(0), Frequency: Monthly},
		CanSell:    true,
	}
}

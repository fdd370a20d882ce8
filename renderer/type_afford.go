package renderer

import "github.com/etnz/networth"

// Afford is the affordability report.
type Afford struct {
	// Available is false when there is no mortgage to project.
	Available bool
	// House is the label of the mortgaged house.
	House string
	// Current is the current monthly repayment, e.g. "$5,200 p/m".
	Current     string
	Balance     networth.Money
	NetPosition networth.Money
	Scenarios   []AffordScenario
}

// AffordScenario is a single multiplier of the current repayments.
type AffordScenario struct {
	Multiplier    networth.Factor
	NetHouseValue networth.Money
	ScaledLoan    networth.Money
	StampDuty     networth.Money
	// Monthly is the repayment, e.g. "$7,800 p/m".
	Monthly string
}

// NewAfford creates the affordability report of assets over ladder, in currency.
func NewAfford(assets networth.Assets, ladder []networth.Factor, currency string) *Afford {
	a, ok := networth.Afford(assets, ladder)
	if !ok {
		return &Afford{}
	}
	r := &Afford{
		Available:   true,
		House:       a.Mortgage.House.Label,
		Current:     perMonth(a.MonthlyRepayment.In(currency)),
		Balance:     a.Mortgage.Balance.In(currency),
		NetPosition: a.NetPosition.In(currency),
		Scenarios:   make([]AffordScenario, 0, len(a.Scenarios)),
	}
	for _, s := range a.Scenarios {
		r.Scenarios = append(r.Scenarios, AffordScenario{
			Multiplier:    s.Multiplier,
			NetHouseValue: s.NetHouseValue.In(currency),
			ScaledLoan:    s.ScaledLoan.In(currency),
			StampDuty:     s.StampDuty.In(currency),
			Monthly:       perMonth(s.MonthlyRepayment.In(currency)),
		})
	}
	return r
}

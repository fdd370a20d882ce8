package networth

// StampDutyRate is a flat approximation of the transaction tax paid when
// buying a house. Real stamp duty is tiered and depends on the state.
var StampDutyRate = F(0.055)

// DefaultLadder is the list of repayment multipliers used to project what one
// could afford.
var DefaultLadder = []Factor{F(1), F(1.25), F(1.5), F(1.75), F(2)}

// Mortgage is the current home loan and its repayments.
type Mortgage struct {
	House      House      // House financed by the loan.
	Balance    Money      // Balance of the loan, negative.
	Repayments Repayments // Repayments as stated on the house.
}

// FindMortgage returns the mortgage of the first house with a loan.
//
// A house has a loan either through its Loan field or through a Loan asset
// that Secures it. The field takes precedence across the whole collection.
// It returns false when no house has a loan, or when that house has no
// repayments.
func FindMortgage(assets Assets) (Mortgage, bool) {
	m, ok := findMortgage(assets)
	if !ok || m.Repayments.Amount.IsZero() {
		return Mortgage{}, false
	}
	return m, true
}

func findMortgage(assets Assets) (Mortgage, bool) {
	for _, a := range assets {
		if h, ok := a.(House); ok && !h.Loan.IsZero() {
			return Mortgage{House: h, Balance: h.Loan, Repayments: h.Repayments}, true
		}
	}
	for _, a := range assets {
		l, ok := a.(Loan)
		if !ok || l.Secures == "" || l.Amount.IsZero() {
			continue
		}
		if h, ok := assets.Find(l.Secures); ok {
			if h, ok := h.(House); ok {
				return Mortgage{House: h, Balance: l.Amount, Repayments: h.Repayments}, true
			}
		}
	}
	return Mortgage{}, false
}

// Scenario is what one could afford when repaying Multiplier times the current
// mortgage repayments.
type Scenario struct {
	Multiplier       Factor
	ScaledLoan       Money // ScaledLoan is the current balance times Multiplier, negative.
	HouseValue       Money // HouseValue is the purchasing power: the new loan plus the net position.
	StampDuty        Money // StampDuty is the estimated tax on HouseValue.
	NetHouseValue    Money // NetHouseValue is HouseValue less StampDuty.
	MonthlyRepayment Money
}

// Project computes one Scenario per multiplier in ladder, in ladder order.
func Project(m Mortgage, net Money, ladder []Factor) []Scenario {
	monthly := m.Repayments.Monthly()
	scenarios := make([]Scenario, 0, len(ladder))
	for _, k := range ladder {
		scaled := m.Balance.Mul(k)
		house := scaled.Neg().Add(net)
		duty := house.Mul(StampDutyRate)
		scenarios = append(scenarios, Scenario{
			Multiplier:       k,
			ScaledLoan:       scaled,
			HouseValue:       house,
			StampDuty:        duty,
			NetHouseValue:    house.Sub(duty),
			MonthlyRepayment: monthly.Mul(k),
		})
	}
	return scenarios
}

// Affordability gathers everything needed to present affordability scenarios.
type Affordability struct {
	Mortgage         Mortgage
	MonthlyRepayment Money // MonthlyRepayment is the current repayment, per month.
	NetPosition      Money
	Scenarios        []Scenario
}

// Afford projects the assets' mortgage over ladder. It returns false when
// there is not enough data: no house with a loan and repayments.
func Afford(assets Assets, ladder []Factor) (Affordability, bool) {
	m, ok := FindMortgage(assets)
	if !ok {
		return Affordability{}, false
	}
	net := NetPosition(assets)
	return Affordability{
		Mortgage:         m,
		MonthlyRepayment: m.Repayments.Monthly(),
		NetPosition:      net,
		Scenarios:        Project(m, net, ladder),
	}, true
}

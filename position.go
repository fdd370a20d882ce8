package networth

import "fmt"

// Contribution returns what an asset adds to the net position.
//
// Loans always count at their full balance. A house that can be sold counts
// for its liquid value less its attached Loan; a house that cannot be sold
// counts for nothing. The mortgage is netted here and only here.
func Contribution(a Asset) Money {
	switch v := a.(type) {
	case House:
		if !v.CanSell {
			return zeroOf(v.Amount)
		}
		return Liquid(v).Add(v.Loan)
	case Shares, Offset, Misc, Loan:
		return Liquid(v)
	default:
		panic(fmt.Sprintf("unsupported asset type %T", a))
	}
}

// NetPosition returns the sum of every asset's contribution.
func NetPosition(assets Assets) Money {
	var total Money
	for _, a := range assets {
		total = total.Add(Contribution(a))
	}
	return total
}

// Line details how a single asset contributes to the net position.
type Line struct {
	Asset        Asset
	Amount       Money // Amount of the asset, for a house its approximate sale price.
	AgentFee     Money // AgentFee deducted from a house amount.
	Loan         Money // Loan attached to a house.
	Liquid       Money // Liquid as computed by Liquid.
	Contribution Money // Contribution to the net position.
	Sellable     bool  // Sellable is false for a house the owner is not willing to sell.
}

// Breakdown returns one Line per asset, in collection order.
func Breakdown(assets Assets) []Line {
	lines := make([]Line, 0, len(assets))
	for _, a := range assets {
		l := Line{
			Asset:        a,
			Amount:       a.Details().Amount,
			Liquid:       Liquid(a),
			Contribution: Contribution(a),
			Sellable:     true,
		}
		if h, ok := a.(House); ok {
			l.AgentFee = h.AgentFee()
			l.Loan = h.Loan
			l.Sellable = h.CanSell
		}
		lines = append(lines, l)
	}
	return lines
}

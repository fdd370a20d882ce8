package networth

import "fmt"

// AgentFeeRate is the share of a house's value lost to sale costs.
var AgentFeeRate = F(0.02)

// AgentFee returns the estimated sale costs for a house.
func (h House) AgentFee() Money { return h.Amount.Mul(AgentFeeRate) }

// SalePrice returns what selling the house would bring, after agent fees.
// The mortgage is not deducted.
func (h House) SalePrice() Money { return h.Amount.Sub(h.AgentFee()) }

// Liquid returns the part of an asset's value that can realistically be turned
// into spendable cash.
//
// For a House, agent fees are deducted first, then the liquidity policy
// applies; a house that cannot be sold is worth nothing. The mortgage is not
// deducted here, see Contribution.
//
// A Loan has no liquidity policy: its balance is returned unchanged.
func Liquid(a Asset) Money {
	switch v := a.(type) {
	case House:
		if !v.CanSell {
			return zeroOf(v.Amount)
		}
		return applyLiquidity(v.Liquidity, v.SalePrice())
	case Shares:
		return applyLiquidity(v.Liquidity, v.Amount)
	case Offset:
		return applyLiquidity(v.Liquidity, v.Amount)
	case Misc:
		return applyLiquidity(v.Liquidity, v.Amount)
	case Loan:
		return v.Amount
	default:
		panic(fmt.Sprintf("unsupported asset type %T", a))
	}
}

// LiquidRatio returns the liquid part of an asset relative to its amount, and
// false when it does not apply (loans and zero amounts).
func LiquidRatio(a Asset) (Percent, bool) {
	if _, ok := LiquidityOf(a); !ok {
		return 0, false
	}
	amount := a.Details().Amount
	if amount.IsZero() {
		return 0, false
	}
	return Liquid(a).Ratio(amount).Percent(), true
}

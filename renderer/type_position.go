package renderer

import (
	"fmt"

	"github.com/etnz/networth"
)

// Position is the net position report.
type Position struct {
	// Total is the net position.
	Total networth.Money
	// Lines details every asset contribution, in display order.
	Lines []PositionLine
}

// PositionLine is a single asset in the net position report.
type PositionLine struct {
	Label  string
	Slug   string
	Type   networth.AssetType
	Amount networth.Money
	// Detail explains how the asset contributes, e.g. "$25k from $35k".
	Detail string
	// Muted is true when the asset does not contribute at all.
	Muted bool
}

// NewPosition creates the net position report of assets, in currency.
func NewPosition(assets networth.Assets, currency string) *Position {
	p := &Position{
		Total: networth.NetPosition(assets).In(currency),
		Lines: make([]PositionLine, 0, len(assets)),
	}
	for _, l := range networth.Breakdown(assets) {
		info := l.Asset.Details()
		p.Lines = append(p.Lines, PositionLine{
			Label:  info.Label,
			Slug:   info.Slug,
			Type:   l.Asset.Type(),
			Amount: l.Amount.In(currency),
			Detail: detail(l, currency),
			Muted:  l.Contribution.IsZero(),
		})
	}
	return p
}

// detail describes a breakdown line.
func detail(l networth.Line, currency string) string {
	liquid := l.Liquid.In(currency)
	amount := l.Amount.In(currency)
	switch l.Asset.Type() {
	case networth.TypeHouse:
		if !l.Sellable {
			return "Not willing to sell"
		}
		s := fmt.Sprintf("%s (approx sale price) - %s (agent fees)", amount.Compact(), l.AgentFee.In(currency).Compact())
		if !liquid.Equal(amount.Sub(l.AgentFee)) {
			s += fmt.Sprintf(" = %s liquid", liquid.Compact())
		}
		if !l.Loan.IsZero() {
			s += fmt.Sprintf(" - %s (loan)", l.Loan.Neg().In(currency).Compact())
		}
		return s + " = " + l.Contribution.In(currency).Compact()
	case networth.TypeLoan:
		return liquid.Compact()
	default:
		if liquid.Equal(amount) {
			return liquid.Compact()
		}
		return fmt.Sprintf("%s from %s", liquid.Compact(), amount.Compact())
	}
}

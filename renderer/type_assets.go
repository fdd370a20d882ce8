package renderer

import (
	"fmt"

	"github.com/etnz/networth"
)

// AssetList is the list of assets, as stored.
type AssetList struct {
	Assets []AssetItem
}

// AssetItem is a single asset in the list.
type AssetItem struct {
	Slug   string
	Type   networth.AssetType
	Label  string
	Amount networth.Money
	// Policy describes the liquidity policy, e.g. "40%" or "$5k held back".
	Policy string
	// Liquid is the liquid ratio, empty when it does not apply.
	Liquid string
}

// NewAssetList creates the list of assets, in currency.
func NewAssetList(assets networth.Assets, currency string) *AssetList {
	l := &AssetList{Assets: make([]AssetItem, 0, len(assets))}
	for _, a := range assets {
		info := a.Details()
		item := AssetItem{
			Slug:   info.Slug,
			Type:   a.Type(),
			Label:  info.Label,
			Amount: info.Amount.In(currency),
			Policy: Policy(a, currency),
		}
		if r, ok := networth.LiquidRatio(a); ok {
			item.Liquid = r.String()
		}
		l.Assets = append(l.Assets, item)
	}
	return l
}

// Policy describes how the liquidity of an asset is computed.
func Policy(a networth.Asset, currency string) string {
	var prefix string
	switch v := a.(type) {
	case networth.House:
		if !v.CanSell {
			return "not for sale"
		}
		prefix = "less agent fees, "
	case networth.Loan:
		if v.Secures != "" {
			return "secures " + v.Secures
		}
		return ""
	}

	l, _ := networth.LiquidityOf(a)
	switch v := l.(type) {
	case nil, networth.AllLiquid:
		return prefix + "all"
	case networth.NotLiquid:
		return prefix + "none"
	case networth.PercentLiquid:
		return prefix + v.Fraction.Clamp().Percent().String()
	case networth.SpendableAmount:
		return prefix + fmt.Sprintf("%s spendable", v.Amount.In(currency).Compact())
	case networth.RemainingAmount:
		return prefix + fmt.Sprintf("%s held back", v.Amount.In(currency).Compact())
	default:
		panic(fmt.Sprintf("unsupported liquidity type %T", l))
	}
}

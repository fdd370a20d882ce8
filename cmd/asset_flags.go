package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/networth"
)

// assetFlags holds the flags describing an asset, shared by add and update.
// Only the flags actually set on the command line are applied.
type assetFlags struct {
	kind       string
	label      string
	amount     string
	loan       string
	repayments string
	frequency  string
	canSell    bool
	liquidity  string
	secures    string
}

func (a *assetFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&a.kind, "type", string(networth.TypeMisc), "Asset type: house, shares, offset, misc or loan")
	f.StringVar(&a.label, "label", "", "Display name of the asset")
	f.StringVar(&a.amount, "amount", "", "Value of the asset, negative for a loan")
	f.StringVar(&a.loan, "loan", "", "Mortgage balance of a house, negative")
	f.StringVar(&a.repayments, "repayments", "", "Mortgage repayments of a house")
	f.StringVar(&a.frequency, "frequency", string(networth.Monthly), "Repayments frequency: weekly, fortnightly or monthly")
	f.BoolVar(&a.canSell, "can-sell", true, "Whether you are willing to sell the house")
	f.StringVar(&a.liquidity, "liquidity", "", "Liquidity policy: all, none, 40%, spend:5000 or keep:5000")
	f.StringVar(&a.secures, "secures", "", "Slug of the house a loan finances")
}

// apply returns asset with every flag set in f applied, in lexicographical
// order of flag names. The -type flag is handled by the caller.
func (a *assetFlags) apply(f *flag.FlagSet, asset networth.Asset, currency string) (networth.Asset, error) {
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		asset, err = a.set(asset, fl.Name, currency)
		if err != nil {
			err = fmt.Errorf("-%s: %w", fl.Name, err)
		}
	})
	return asset, err
}

// set applies a single flag to asset.
func (a *assetFlags) set(asset networth.Asset, name, currency string) (networth.Asset, error) {
	switch name {
	case "type":
		return asset, nil
	case "label":
		info := asset.Details()
		info.Label = a.label
		return withInfo(asset, info), nil
	case "amount":
		m, err := networth.ParseMoney(a.amount, currency)
		if err != nil {
			return nil, err
		}
		info := asset.Details()
		info.Amount = m
		return withInfo(asset, info), nil
	case "liquidity":
		l, err := networth.ParseLiquidity(a.liquidity, currency)
		if err != nil {
			return nil, err
		}
		return withLiquidity(asset, l)
	case "secures":
		loan, ok := asset.(networth.Loan)
		if !ok {
			return nil, fmt.Errorf("only a loan secures a house, not a %s", asset.Type())
		}
		loan.Secures = a.secures
		return loan, nil
	}

	// remaining flags are about the mortgage of a house.
	h, ok := asset.(networth.House)
	if !ok {
		return nil, fmt.Errorf("only applies to a house, not a %s", asset.Type())
	}
	switch name {
	case "loan":
		m, err := networth.ParseMoney(a.loan, currency)
		if err != nil {
			return nil, err
		}
		h.Loan = m
	case "repayments":
		m, err := networth.ParseMoney(a.repayments, currency)
		if err != nil {
			return nil, err
		}
		h.Repayments.Amount = m
	case "frequency":
		freq, err := networth.ParseFrequency(a.frequency)
		if err != nil {
			return nil, err
		}
		h.Repayments.Frequency = freq
	case "can-sell":
		h.CanSell = a.canSell
	default:
		return nil, fmt.Errorf("unknown flag %q", name)
	}
	return h, nil
}

// convert returns asset as a new asset of type t, keeping its label and
// amount. Unchanged types are returned as is.
func convert(asset networth.Asset, t networth.AssetType, currency string) networth.Asset {
	if asset.Type() == t {
		return asset
	}
	return withInfo(networth.NewAsset(t, currency), asset.Details())
}

// withInfo returns asset with its common fields replaced by info.
func withInfo(asset networth.Asset, info networth.Info) networth.Asset {
	switch v := asset.(type) {
	case networth.House:
		v.Info = info
		return v
	case networth.Shares:
		v.Info = info
		return v
	case networth.Offset:
		v.Info = info
		return v
	case networth.Misc:
		v.Info = info
		return v
	case networth.Loan:
		v.Info = info
		return v
	default:
		panic(fmt.Sprintf("unsupported asset type %T", asset))
	}
}

// withLiquidity returns asset with its liquidity policy replaced by l.
func withLiquidity(asset networth.Asset, l networth.Liquidity) (networth.Asset, error) {
	switch v := asset.(type) {
	case networth.House:
		v.Liquidity = l
		return v, nil
	case networth.Shares:
		v.Liquidity = l
		return v, nil
	case networth.Offset:
		v.Liquidity = l
		return v, nil
	case networth.Misc:
		v.Liquidity = l
		return v, nil
	case networth.Loan:
		return nil, fmt.Errorf("a loan has no liquidity policy")
	default:
		panic(fmt.Sprintf("unsupported asset type %T", asset))
	}
}

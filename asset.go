package networth

import "fmt"

// AssetType is the tag identifying an asset variant.
type AssetType string

// Asset types, as they appear in the asset file.
const (
	TypeHouse  AssetType = "house"
	TypeShares AssetType = "shares"
	TypeOffset AssetType = "offset"
	TypeMisc   AssetType = "misc"
	TypeLoan   AssetType = "loan"
)

// AssetTypes returns every asset type, in display order.
func AssetTypes() []AssetType {
	return []AssetType{TypeHouse, TypeShares, TypeOffset, TypeMisc, TypeLoan}
}

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	for _, t := range AssetTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown asset type: %q", s)
}

// Asset is a single record of what someone owns or owes.
//
// The set of assets is closed: House, Shares, Offset, Misc and Loan. Code
// consuming an Asset switches over all of them.
type Asset interface {
	Type() AssetType
	// Details returns the fields common to all assets.
	Details() Info
	withSlug(slug string) Asset
}

// Info holds the fields common to every asset.
type Info struct {
	Label  string // Label is the display name.
	Slug   string // Slug is the unique identifier within a collection, derived from the Label.
	Amount Money  // Amount is the value, negative for a Loan.
}

// Details returns i.
func (i Info) Details() Info { return i }

// House is real estate, optionally financed by a mortgage.
type House struct {
	Info
	Loan       Money      // Loan is the attached mortgage balance, zero or negative.
	Repayments Repayments // Repayments on the mortgage.
	CanSell    bool       // CanSell is false when the owner is not willing to sell.
	Liquidity  Liquidity  // Liquidity applies after agent fees, nil means AllLiquid.
}

// Shares is an equity holding.
type Shares struct {
	Info
	Liquidity Liquidity
}

// Offset is a mortgage offset account.
type Offset struct {
	Info
	Liquidity Liquidity
}

// Misc is any other asset: savings, a car, super...
type Misc struct {
	Info
	Liquidity Liquidity
}

// Loan is a liability. Its Amount is zero or negative.
type Loan struct {
	Info
	Secures string // Secures is the slug of the House this loan finances, if any.
}

func (House) Type() AssetType  { return TypeHouse }
func (Shares) Type() AssetType { return TypeShares }
func (Offset) Type() AssetType { return TypeOffset }
func (Misc) Type() AssetType   { return TypeMisc }
func (Loan) Type() AssetType   { return TypeLoan }

func (a House) withSlug(slug string) Asset  { a.Slug = slug; return a }
func (a Shares) withSlug(slug string) Asset { a.Slug = slug; return a }
func (a Offset) withSlug(slug string) Asset { a.Slug = slug; return a }
func (a Misc) withSlug(slug string) Asset   { a.Slug = slug; return a }
func (a Loan) withSlug(slug string) Asset   { a.Slug = slug; return a }

// LiquidityOf returns the liquidity policy of a, and false for a Loan which has none.
func LiquidityOf(a Asset) (Liquidity, bool) {
	switch v := a.(type) {
	case House:
		return v.Liquidity, true
	case Shares:
		return v.Liquidity, true
	case Offset:
		return v.Liquidity, true
	case Misc:
		return v.Liquidity, true
	case Loan:
		return nil, false
	default:
		panic(fmt.Sprintf("unsupported asset type %T", a))
	}
}

// NewAsset returns an asset of type t with default values, labelled "New Asset".
// The currency is used for every amount.
func NewAsset(t AssetType, currency string) Asset {
	info := Info{Label: "New Asset", Amount: M(0, currency)}
	switch t {
	case TypeHouse:
		return House{
			Info:       info,
			Loan:       M(0, currency),
			Repayments: Repayments{Amount: M(0, currency), Frequency: Monthly},
			CanSell:    true,
		}
	case TypeShares:
		return Shares{Info: info, Liquidity: SpendableAmount{Amount: M(0, currency)}}
	case TypeOffset:
		return Offset{Info: info, Liquidity: SpendableAmount{Amount: M(0, currency)}}
	case TypeMisc:
		return Misc{Info: info, Liquidity: SpendableAmount{Amount: M(0, currency)}}
	case TypeLoan:
		return Loan{Info: info}
	default:
		panic(fmt.Sprintf("unsupported asset type %q", t))
	}
}

// Equal reports whether a and b are the same asset with the same values.
func Equal(a, b Asset) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() || !a.Details().equal(b.Details()) {
		return false
	}
	switch x := a.(type) {
	case House:
		y := b.(House)
		return x.Loan.Equal(y.Loan) && x.Repayments.Equal(y.Repayments) &&
			x.CanSell == y.CanSell && EqualLiquidity(x.Liquidity, y.Liquidity)
	case Shares:
		return EqualLiquidity(x.Liquidity, b.(Shares).Liquidity)
	case Offset:
		return EqualLiquidity(x.Liquidity, b.(Offset).Liquidity)
	case Misc:
		return EqualLiquidity(x.Liquidity, b.(Misc).Liquidity)
	case Loan:
		return x.Secures == b.(Loan).Secures
	default:
		panic(fmt.Sprintf("unsupported asset type %T", a))
	}
}

func (i Info) equal(j Info) bool {
	return i.Label == j.Label && i.Slug == j.Slug && i.Amount.Equal(j.Amount)
}

// Equal reports whether r and s describe the same repayments.
func (r Repayments) Equal(s Repayments) bool {
	return r.Amount.Equal(s.Amount) && r.Frequency == s.Frequency
}

// EqualLiquidity reports whether two policies are identical. A nil policy is
// only equal to another nil policy.
func EqualLiquidity(l, k Liquidity) bool {
	if l == nil || k == nil {
		return l == nil && k == nil
	}
	switch x := l.(type) {
	case AllLiquid, NotLiquid:
		return l.Kind() == k.Kind()
	case PercentLiquid:
		y, ok := k.(PercentLiquid)
		return ok && x.Fraction.Equal(y.Fraction)
	case SpendableAmount:
		y, ok := k.(SpendableAmount)
		return ok && x.Amount.Equal(y.Amount)
	case RemainingAmount:
		y, ok := k.(RemainingAmount)
		return ok && x.Amount.Equal(y.Amount)
	default:
		panic(fmt.Sprintf("unsupported liquidity type %T", l))
	}
}

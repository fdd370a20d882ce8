package networth

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists a collection of assets as JSONL: one asset per line, in
// display order, so that the file stays human-readable and git-friendly.
//
// Amounts are bare numbers, the currency is a property of the whole file and is
// given to DecodeAssets.

// MarshalJSON writes label, slug and amount, in that order.
func (i Info) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("label", i.Label)
	w.Append("slug", i.Slug)
	w.Append("amount", i.Amount)
	return w.MarshalJSON()
}

func (a House) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", a.Type())
	w.EmbedFrom(a.Info)
	w.Append("loan", a.Loan)
	w.Append("repayments", a.Repayments)
	w.Append("canSell", a.CanSell)
	if a.Liquidity != nil {
		w.Append("liquidity", a.Liquidity)
	}
	return w.MarshalJSON()
}

func (a Shares) MarshalJSON() ([]byte, error) { return marshalLiquid(a, a.Info, a.Liquidity) }
func (a Offset) MarshalJSON() ([]byte, error) { return marshalLiquid(a, a.Info, a.Liquidity) }
func (a Misc) MarshalJSON() ([]byte, error)   { return marshalLiquid(a, a.Info, a.Liquidity) }

// marshalLiquid marshals the assets that are only made of Info and Liquidity.
func marshalLiquid(a Asset, info Info, l Liquidity) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", a.Type())
	w.EmbedFrom(info)
	if l != nil {
		w.Append("liquidity", l)
	}
	return w.MarshalJSON()
}

func (a Loan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", a.Type())
	w.EmbedFrom(a.Info)
	w.Optional("secures", a.Secures)
	return w.MarshalJSON()
}

func (l AllLiquid) MarshalJSON() ([]byte, error) { return marshalKind(l) }
func (l NotLiquid) MarshalJSON() ([]byte, error) { return marshalKind(l) }

func marshalKind(l Liquidity) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", l.Kind())
	return w.MarshalJSON()
}

func (l PercentLiquid) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", l.Kind())
	w.Append("percent", l.Fraction)
	return w.MarshalJSON()
}

func (l SpendableAmount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", l.Kind())
	w.Append("amount", l.Amount)
	return w.MarshalJSON()
}

func (l RemainingAmount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", l.Kind())
	w.Append("amount", l.Amount)
	return w.MarshalJSON()
}

// EncodeAssets writes assets to w, one JSON object per line.
func EncodeAssets(w io.Writer, assets Assets) error {
	for _, a := range assets {
		line, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("could not encode asset %q: %w", a.Details().Slug, err)
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// jinfo is the decoding counterpart of Info.
type jinfo struct {
	Type   AssetType       `json:"type"`
	Label  string          `json:"label"`
	Slug   string          `json:"slug"`
	Amount decimal.Decimal `json:"amount"`
}

// DecodeAssets reads a JSONL stream of assets, amounts being in currency.
// Empty lines are skipped. The decoded collection is validated.
func DecodeAssets(r io.Reader, currency string) (Assets, error) {
	assets := make(Assets, 0)
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		a, err := decodeAsset(line, currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		assets = append(assets, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := assets.Validate(); err != nil {
		return nil, err
	}
	return assets, nil
}

func decodeAsset(line []byte, currency string) (Asset, error) {
	var temp struct {
		jinfo
		Loan       decimal.Decimal `json:"loan"`
		Repayments struct {
			Amount    decimal.Decimal `json:"amount"`
			Frequency Frequency       `json:"frequency"`
		} `json:"repayments"`
		CanSell   bool            `json:"canSell"`
		Liquidity json.RawMessage `json:"liquidity"`
		Secures   string          `json:"secures"`
	}
	if err := json.Unmarshal(line, &temp); err != nil {
		return nil, fmt.Errorf("could not decode asset %q: %w", string(line), err)
	}

	info := Info{Label: temp.Label, Slug: temp.Slug, Amount: M(temp.Amount, currency)}
	var liquidity Liquidity
	if temp.Type != TypeLoan {
		var err error
		if liquidity, err = decodeLiquidity(temp.Liquidity, currency); err != nil {
			return nil, fmt.Errorf("asset %q: %w", temp.Slug, err)
		}
	}

	switch temp.Type {
	case TypeHouse:
		return House{
			Info:       info,
			Loan:       M(temp.Loan, currency),
			Repayments: Repayments{Amount: M(temp.Repayments.Amount, currency), Frequency: temp.Repayments.Frequency},
			CanSell:    temp.CanSell,
			Liquidity:  liquidity,
		}, nil
	case TypeShares:
		return Shares{Info: info, Liquidity: liquidity}, nil
	case TypeOffset:
		return Offset{Info: info, Liquidity: liquidity}, nil
	case TypeMisc:
		return Misc{Info: info, Liquidity: liquidity}, nil
	case TypeLoan:
		return Loan{Info: info, Secures: temp.Secures}, nil
	default:
		return nil, fmt.Errorf("unknown asset type %q", temp.Type)
	}
}

// decodeLiquidity reads a liquidity policy. Besides the tagged object form,
// it accepts the legacy forms: the string "all" and a bare number, which is
// the spendable amount.
func decodeLiquidity(raw json.RawMessage, currency string) (Liquidity, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '"':
		var tag LiquidityType
		if err := json.Unmarshal(raw, &tag); err != nil {
			return nil, err
		}
		switch tag {
		case LiquidAll:
			return AllLiquid{}, nil
		case LiquidNone:
			return NotLiquid{}, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownLiquidity, tag)
	case '{':
		// handled below
	default:
		var amount decimal.Decimal
		if err := json.Unmarshal(raw, &amount); err != nil {
			return nil, fmt.Errorf("invalid liquidity %s: %w", raw, err)
		}
		return SpendableAmount{Amount: M(amount, currency)}, nil
	}

	var temp struct {
		Type    LiquidityType   `json:"type"`
		Percent decimal.Decimal `json:"percent"`
		Amount  decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(raw, &temp); err != nil {
		return nil, fmt.Errorf("invalid liquidity %s: %w", raw, err)
	}
	switch temp.Type {
	case LiquidAll:
		return AllLiquid{}, nil
	case LiquidNone:
		return NotLiquid{}, nil
	case LiquidPercent:
		return PercentLiquid{Fraction: F(temp.Percent)}, nil
	case LiquidSpendable:
		return SpendableAmount{Amount: M(temp.Amount, currency)}, nil
	case LiquidRemaining:
		return RemainingAmount{Amount: M(temp.Amount, currency)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLiquidity, temp.Type)
	}
}

package networth

import (
	"errors"
	"fmt"
	"strings"
)

// LiquidityType is the tag identifying a liquidity policy.
type LiquidityType string

// Liquidity policy tags, as they appear in the asset file.
const (
	LiquidAll       LiquidityType = "all"
	LiquidNone      LiquidityType = "none"
	LiquidPercent   LiquidityType = "percent"
	LiquidSpendable LiquidityType = "amount-spendable"
	LiquidRemaining LiquidityType = "amount-remaining"
)

// ErrUnknownLiquidity is returned when decoding a liquidity policy with an unknown tag.
var ErrUnknownLiquidity = errors.New("unknown liquidity type")

// Liquidity is the policy describing how much of an asset's value can be
// turned into spendable cash.
//
// The set of policies is closed: AllLiquid, NotLiquid, PercentLiquid,
// SpendableAmount and RemainingAmount.
type Liquidity interface {
	Kind() LiquidityType
	// apply returns the liquid part of amount. It never returns a value
	// outside [0, amount] except for AllLiquid.
	apply(amount Money) Money
}

// AllLiquid means the whole amount is available.
type AllLiquid struct{}

// NotLiquid means nothing is available.
type NotLiquid struct{}

// PercentLiquid means a fraction of the amount is available.
type PercentLiquid struct {
	Fraction Factor // in [0, 1], out of range values are clamped.
}

// SpendableAmount caps the available cash to an absolute amount.
type SpendableAmount struct {
	Amount Money
}

// RemainingAmount holds back an amount, the rest is available.
type RemainingAmount struct {
	Amount Money
}

func (AllLiquid) Kind() LiquidityType       { return LiquidAll }
func (NotLiquid) Kind() LiquidityType       { return LiquidNone }
func (PercentLiquid) Kind() LiquidityType   { return LiquidPercent }
func (SpendableAmount) Kind() LiquidityType { return LiquidSpendable }
func (RemainingAmount) Kind() LiquidityType { return LiquidRemaining }

func (AllLiquid) apply(amount Money) Money { return amount }
func (NotLiquid) apply(amount Money) Money { return amount.Mul(zeroFactor) }

func (l PercentLiquid) apply(amount Money) Money {
	return amount.Mul(l.Fraction.Clamp())
}

func (l SpendableAmount) apply(amount Money) Money {
	return l.Amount.In(amount.cur).Clamp(zeroOf(amount), ceiling(amount))
}

func (l RemainingAmount) apply(amount Money) Money {
	return amount.Sub(l.Amount.In(amount.cur)).Clamp(zeroOf(amount), ceiling(amount))
}

// zeroOf returns a zero amount in the same currency as m.
func zeroOf(m Money) Money { return M(0, m.cur) }

// ceiling is the upper bound for a liquid amount, never below zero.
func ceiling(m Money) Money {
	if m.IsNegative() {
		return zeroOf(m)
	}
	return m
}

// applyLiquidity applies l to amount. A nil policy counts as fully liquid.
func applyLiquidity(l Liquidity, amount Money) Money {
	if l == nil {
		return amount
	}
	return l.apply(amount)
}

// ParseLiquidity reads a liquidity policy in its short form:
//
//	all         AllLiquid
//	none        NotLiquid
//	40%         PercentLiquid
//	spend:5000  SpendableAmount
//	keep:5000   RemainingAmount
//
// The empty string returns a nil policy, which counts as fully liquid.
func ParseLiquidity(s, currency string) (Liquidity, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, nil
	case s == string(LiquidAll):
		return AllLiquid{}, nil
	case s == string(LiquidNone):
		return NotLiquid{}, nil
	case strings.HasSuffix(s, "%"):
		f, err := ParsePercent(s)
		if err != nil {
			return nil, err
		}
		return PercentLiquid{Fraction: f}, nil
	}

	kind, amount, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLiquidity, s)
	}
	m, err := ParseMoney(amount, currency)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "spend":
		return SpendableAmount{Amount: m}, nil
	case "keep":
		return RemainingAmount{Amount: m}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLiquidity, s)
}

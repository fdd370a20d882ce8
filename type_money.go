package networth

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// Money represents a monetary value in whole currency units.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, like "$720,000.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Compact returns a short representation of the money value, rounded to three
// significant digits: "$281k", "-$1.25m", "$0".
// The m suffix starts at one million inclusive, after rounding: $999,999
// prints "$1m", not "$1000k".
func (m Money) Compact() string {
	prefix := ""
	if m.IsNegative() {
		prefix = "-"
	}
	prefix += m.currency().Grapheme

	abs := significant(m.value.Abs(), 3)
	switch {
	case abs.GreaterThanOrEqual(million):
		return prefix + abs.Div(million).String() + "m"
	case !abs.IsZero():
		return prefix + abs.Div(thousand).String() + "k"
	}
	return prefix + "0"
}

// significant rounds d to n significant digits.
func significant(d decimal.Decimal, n int32) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	// position of the most significant digit relative to the unit.
	msd := int32(d.NumDigits()) + d.Exponent()
	return d.Round(n - msd)
}

// In returns a copy of m expressed in currency.
func (m Money) In(currency string) Money { return Money{value: m.value, cur: currency} }

// Simple wrapper around decimal.Decimal

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Mul(f Factor) Money              { return Money{value: m.value.Mul(f.value), cur: m.cur} }
func (m Money) Ratio(n Money) Factor            { return Factor{value: m.value.Div(n.value)} }
func (m Money) Decimal() decimal.Decimal        { return m.value }

// Round returns m rounded to the nearest whole currency unit, half away from zero.
func (m Money) Round() Money { return Money{value: m.value.Round(0), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Clamp returns m bounded to [lo, hi].
func (m Money) Clamp(lo, hi Money) Money {
	if m.LessThan(lo) {
		return lo
	}
	if m.GreaterThan(hi) {
		return hi
	}
	return m
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalJSON writes the bare amount, the currency is a property of the whole collection.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON reads a bare amount, currency is left unset.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}

// Symbol returns the currency symbol, like "$".
func (m Money) Symbol() string { return m.currency().Grapheme }

// ParseMoney reads a plain decimal amount like "-425000" or "2400.50" in currency.
// Thousands separators "," and "_" are ignored.
func ParseMoney(s, currency string) (Money, error) {
	clean := strings.NewReplacer(",", "", "_", "").Replace(strings.TrimSpace(s))
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return M(d, currency), nil
}

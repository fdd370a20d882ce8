package networth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Factor is a dimensionless exact number: a fraction, a rate or a multiplier.
type Factor struct {
	value decimal.Decimal
}

func F[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Factor {
	return Factor{value: newDecimal(value)}
}

// ParseFactor parses a decimal string such as "1.25".
func ParseFactor(s string) (Factor, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Factor{}, fmt.Errorf("invalid factor %q: %w", s, err)
	}
	return Factor{value: d}, nil
}

var (
	zeroFactor = F(0)
	oneFactor  = F(1)
)

func (f Factor) Equal(g Factor) bool       { return f.value.Equal(g.value) }
func (f Factor) LessThan(g Factor) bool    { return f.value.LessThan(g.value) }
func (f Factor) GreaterThan(g Factor) bool { return f.value.GreaterThan(g.value) }
func (f Factor) Mul(g Factor) Factor       { return Factor{value: f.value.Mul(g.value)} }
func (f Factor) IsZero() bool              { return f.value.IsZero() }
func (f Factor) String() string            { return f.value.String() }

// Clamp returns f bounded to [0, 1].
func (f Factor) Clamp() Factor {
	if f.LessThan(zeroFactor) {
		return zeroFactor
	}
	if f.GreaterThan(oneFactor) {
		return oneFactor
	}
	return f
}

// Percent converts a fraction into a percentage for display.
func (f Factor) Percent() Percent {
	return Percent(f.value.Shift(2).InexactFloat64())
}

func (f Factor) MarshalJSON() ([]byte, error) {
	return f.value.MarshalJSON()
}

func (f *Factor) UnmarshalJSON(data []byte) error {
	return f.value.UnmarshalJSON(data)
}

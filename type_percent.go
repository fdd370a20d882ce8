package networth

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Percent is a display value in the [0, 100] range.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.0f%%", float64(p))
}

var hundred = decimal.NewFromInt(100)

// ParsePercent reads a percentage like "40%" or "40" and returns the matching
// fraction. The percentage is clamped to [0, 100] before conversion.
func ParsePercent(s string) (Factor, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Factor{}, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	switch {
	case d.IsNegative():
		d = decimal.Zero
	case d.GreaterThan(hundred):
		d = hundred
	}
	return Factor{value: d.Div(hundred)}, nil
}

package networth

import "fmt"

// Frequency is how often a loan repayment is made.
type Frequency string

const (
	Weekly      Frequency = "weekly"
	Fortnightly Frequency = "fortnightly"
	Monthly     Frequency = "monthly"
)

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case Weekly, Fortnightly, Monthly:
		return f, nil
	default:
		return "", fmt.Errorf("unknown repayment frequency: %q", s)
	}
}

// Repayments is a recurring loan repayment.
type Repayments struct {
	Amount    Money     `json:"amount"`
	Frequency Frequency `json:"frequency"`
}

var (
	weeksPerYear      = F(52)
	fortnightsPerYear = F(26)
	decimalTwelve     = F(12).value
)

// Monthly returns the repayment normalized to a monthly figure, rounded to the
// nearest whole currency unit. Monthly repayments are returned unchanged.
func (r Repayments) Monthly() Money {
	switch r.Frequency {
	case Weekly:
		return perMonth(r.Amount, weeksPerYear)
	case Fortnightly:
		return perMonth(r.Amount, fortnightsPerYear)
	default:
		return r.Amount
	}
}

// perMonth computes round(amount * n / 12).
func perMonth(amount Money, n Factor) Money {
	yearly := amount.Mul(n)
	return Money{value: yearly.value.Div(decimalTwelve), cur: amount.cur}.Round()
}

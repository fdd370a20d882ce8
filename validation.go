package networth

import (
	"errors"
	"fmt"
)

// ErrInvalidAsset is wrapped by every validation failure.
var ErrInvalidAsset = errors.New("invalid asset")

// Validate checks that an asset has a shape the engine can compute on.
func Validate(a Asset) error {
	info := a.Details()
	if info.Label == "" {
		return fmt.Errorf("%w: label is missing", ErrInvalidAsset)
	}
	switch v := a.(type) {
	case House:
		if v.Amount.IsNegative() {
			return fmt.Errorf("%w: house %q amount must not be negative, got %s", ErrInvalidAsset, info.Label, v.Amount)
		}
		if v.Loan.IsPositive() {
			return fmt.Errorf("%w: house %q loan must not be positive, got %s", ErrInvalidAsset, info.Label, v.Loan)
		}
		if v.Repayments.Amount.IsNegative() {
			return fmt.Errorf("%w: house %q repayments must not be negative, got %s", ErrInvalidAsset, info.Label, v.Repayments.Amount)
		}
		if _, err := ParseFrequency(string(v.Repayments.Frequency)); err != nil {
			return fmt.Errorf("%w: house %q: %w", ErrInvalidAsset, info.Label, err)
		}
	case Shares, Offset, Misc:
		if info.Amount.IsNegative() {
			return fmt.Errorf("%w: %s %q amount must not be negative, got %s", ErrInvalidAsset, a.Type(), info.Label, info.Amount)
		}
	case Loan:
		if v.Amount.IsPositive() {
			return fmt.Errorf("%w: loan %q amount must not be positive, got %s", ErrInvalidAsset, info.Label, v.Amount)
		}
	default:
		panic(fmt.Sprintf("unsupported asset type %T", a))
	}
	return nil
}

// Validate checks every asset and slug uniqueness. A loan must secure an
// existing house that has no Loan of its own.
func (a Assets) Validate() error {
	seen := make(map[string]bool, len(a))
	for _, x := range a {
		if err := Validate(x); err != nil {
			return err
		}
		slug := x.Details().Slug
		if slug == "" {
			return fmt.Errorf("%w: %q has no slug", ErrInvalidAsset, x.Details().Label)
		}
		if seen[slug] {
			return fmt.Errorf("%w: slug %q is used more than once", ErrInvalidAsset, slug)
		}
		seen[slug] = true
	}
	for _, x := range a {
		l, ok := x.(Loan)
		if !ok || l.Secures == "" {
			continue
		}
		h, ok := a.Find(l.Secures)
		house, isHouse := h.(House)
		if !ok || !isHouse {
			return fmt.Errorf("%w: loan %q secures %q which is not a house", ErrInvalidAsset, l.Label, l.Secures)
		}
		// a mortgage is either on the house or a sibling loan, never both.
		if !house.Loan.IsZero() {
			return fmt.Errorf("%w: loan %q secures %q which already has a loan of %s", ErrInvalidAsset, l.Label, l.Secures, house.Loan)
		}
	}
	return nil
}

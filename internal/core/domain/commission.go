package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNoMatchingTier = errors.New("no matching commission tier")
	ErrNegativePrice  = errors.New("price must be non-negative")
)

// CommissionTier maps a price range to a commission rate. MinPrice is
// inclusive and required. A nil MaxPrice means the range is open-ended.
type CommissionTier struct {
	MinPrice       decimal.Decimal  `json:"min_price"`
	MaxPrice       *decimal.Decimal `json:"max_price,omitempty"`
	RatePercentage decimal.Decimal  `json:"rate_percentage"`
	Description    string           `json:"description"`
}

// Contains reports whether price falls inside the tier's range.
func (t CommissionTier) Contains(price decimal.Decimal) bool {
	if price.LessThan(t.MinPrice) {
		return false
	}
	if t.MaxPrice != nil && price.GreaterThan(*t.MaxPrice) {
		return false
	}
	return true
}

// TighterThan reports whether t is a more specific match than other. The rate
// table carries no non-overlap constraint, so overlapping matches are broken
// deterministically: greatest floor wins, then bounded beats unbounded, then
// the smaller ceiling wins.
func (t CommissionTier) TighterThan(other CommissionTier) bool {
	if !t.MinPrice.Equal(other.MinPrice) {
		return t.MinPrice.GreaterThan(other.MinPrice)
	}
	if (t.MaxPrice == nil) != (other.MaxPrice == nil) {
		return t.MaxPrice != nil
	}
	if t.MaxPrice != nil && other.MaxPrice != nil {
		return t.MaxPrice.LessThan(*other.MaxPrice)
	}
	return false
}

// Commission computes the fee for price at this tier's rate, rounded to two
// decimal places. Decimal arithmetic throughout; currency never touches float.
func (t CommissionTier) Commission(price decimal.Decimal) decimal.Decimal {
	return price.Mul(t.RatePercentage).Div(decimal.NewFromInt(100)).Round(2)
}

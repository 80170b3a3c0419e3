package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/housebroker/listing-api/internal/core/domain"
)

// CommissionRepository exposes the externally administered rate table,
// read-only from the resolver's perspective.
type CommissionRepository interface {
	ListTiers(ctx context.Context) ([]domain.CommissionTier, error)
}

// CommissionQuote is the result of resolving a price against the tier table.
type CommissionQuote struct {
	Rate            decimal.Decimal `json:"rate"`
	Amount          decimal.Decimal `json:"amount"`
	TierDescription string          `json:"tier_description"`
}

// CommissionService maps a transaction price to a commission amount.
type CommissionService interface {
	Resolve(ctx context.Context, price decimal.Decimal) (*CommissionQuote, error)
}

package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/housebroker/listing-api/internal/core/domain"
	"github.com/housebroker/listing-api/internal/core/ports"
)

// TierSource abstracts where the resolver reads the rate table from, so the
// repository can be wrapped by the in-process cache.
type TierSource interface {
	Tiers(ctx context.Context) ([]domain.CommissionTier, error)
}

// CommissionService resolves a transaction price to a commission quote.
type CommissionService struct {
	tiers TierSource
	log   zerolog.Logger
}

func NewCommissionService(tiers TierSource, log zerolog.Logger) *CommissionService {
	return &CommissionService{tiers: tiers, log: log}
}

// Resolve finds the applicable tier for price and computes the fee. A price
// no tier covers is an error, never a silent zero.
func (s *CommissionService) Resolve(ctx context.Context, price decimal.Decimal) (*ports.CommissionQuote, error) {
	if price.IsNegative() {
		return nil, domain.ErrNegativePrice
	}

	tiers, err := s.tiers.Tiers(ctx)
	if err != nil {
		return nil, err
	}

	var match *domain.CommissionTier
	for i := range tiers {
		t := tiers[i]
		if !t.Contains(price) {
			continue
		}
		if match == nil || t.TighterThan(*match) {
			match = &t
		}
	}
	if match == nil {
		s.log.Warn().Str("price", price.String()).Msg("no commission tier covers price")
		return nil, domain.ErrNoMatchingTier
	}

	return &ports.CommissionQuote{
		Rate:            match.RatePercentage,
		Amount:          match.Commission(price),
		TierDescription: match.Description,
	}, nil
}

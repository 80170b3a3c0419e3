package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/housebroker/listing-api/internal/core/domain"
)

type staticTiers []domain.CommissionTier

func (s staticTiers) Tiers(_ context.Context) ([]domain.CommissionTier, error) {
	return s, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// standardTiers mirrors the seeded rate table: [0,50000] at 2%,
// (50000,200000] at 3%, (200000,∞) at 4%.
func standardTiers() staticTiers {
	return staticTiers{
		{MinPrice: dec("0"), MaxPrice: decPtr("50000"), RatePercentage: dec("2"), Description: "low tier"},
		{MinPrice: dec("50000.01"), MaxPrice: decPtr("200000"), RatePercentage: dec("3"), Description: "mid tier"},
		{MinPrice: dec("200000.01"), RatePercentage: dec("4"), Description: "high tier"},
	}
}

func TestCommissionService_Resolve(t *testing.T) {
	svc := NewCommissionService(standardTiers(), zerolog.Nop())

	cases := []struct {
		price      string
		wantRate   string
		wantAmount string
		wantDesc   string
	}{
		{"30000", "2", "600.00", "low tier"},
		{"200000", "3", "6000.00", "mid tier"},
		{"500000", "4", "20000.00", "high tier"},
		{"0", "2", "0.00", "low tier"},
		{"50000", "2", "1000.00", "low tier"},
	}

	for _, tc := range cases {
		quote, err := svc.Resolve(context.Background(), dec(tc.price))
		if err != nil {
			t.Fatalf("Resolve(%s) returned error: %v", tc.price, err)
		}
		if !quote.Rate.Equal(dec(tc.wantRate)) {
			t.Fatalf("Resolve(%s): rate = %s, want %s", tc.price, quote.Rate, tc.wantRate)
		}
		if quote.Amount.String() != tc.wantAmount {
			t.Fatalf("Resolve(%s): amount = %s, want %s", tc.price, quote.Amount, tc.wantAmount)
		}
		if quote.TierDescription != tc.wantDesc {
			t.Fatalf("Resolve(%s): description = %s, want %s", tc.price, quote.TierDescription, tc.wantDesc)
		}
	}
}

func TestCommissionService_Resolve_NegativePrice(t *testing.T) {
	svc := NewCommissionService(standardTiers(), zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), dec("-10")); !errors.Is(err, domain.ErrNegativePrice) {
		t.Fatalf("expected ErrNegativePrice, got %v", err)
	}
}

func TestCommissionService_Resolve_NoMatchingTier(t *testing.T) {
	gapped := staticTiers{
		{MinPrice: dec("1000"), MaxPrice: decPtr("2000"), RatePercentage: dec("2"), Description: "only tier"},
	}
	svc := NewCommissionService(gapped, zerolog.Nop())

	for _, price := range []string{"500", "2500"} {
		if _, err := svc.Resolve(context.Background(), dec(price)); !errors.Is(err, domain.ErrNoMatchingTier) {
			t.Fatalf("Resolve(%s): expected ErrNoMatchingTier, got %v", price, err)
		}
	}
}

func TestCommissionService_Resolve_OverlapPicksTightestTier(t *testing.T) {
	// Data anomaly: both tiers cover 15000. The higher floor must win.
	overlapping := staticTiers{
		{MinPrice: dec("0"), RatePercentage: dec("1"), Description: "catch-all"},
		{MinPrice: dec("10000"), MaxPrice: decPtr("20000"), RatePercentage: dec("5"), Description: "specific"},
	}
	svc := NewCommissionService(overlapping, zerolog.Nop())

	quote, err := svc.Resolve(context.Background(), dec("15000"))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if quote.TierDescription != "specific" {
		t.Fatalf("expected tightest tier, got %s", quote.TierDescription)
	}

	// Equal floors: the bounded tier beats the open-ended one.
	equalFloors := staticTiers{
		{MinPrice: dec("0"), RatePercentage: dec("1"), Description: "open"},
		{MinPrice: dec("0"), MaxPrice: decPtr("100000"), RatePercentage: dec("2"), Description: "bounded"},
	}
	svc = NewCommissionService(equalFloors, zerolog.Nop())

	quote, err = svc.Resolve(context.Background(), dec("50"))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if quote.TierDescription != "bounded" {
		t.Fatalf("expected bounded tier to win, got %s", quote.TierDescription)
	}
}

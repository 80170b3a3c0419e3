package service

import (
	"context"
	"testing"
	"time"

	"github.com/housebroker/listing-api/internal/core/domain"
)

type countingTierRepo struct {
	calls int
	tiers []domain.CommissionTier
}

func (r *countingTierRepo) ListTiers(_ context.Context) ([]domain.CommissionTier, error) {
	r.calls++
	return r.tiers, nil
}

func TestTierCache_ServesSnapshotWithinInterval(t *testing.T) {
	repo := &countingTierRepo{tiers: standardTiers()}
	cache := NewTierCache(repo, 5*time.Minute)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	now := base
	cache.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		tiers, err := cache.Tiers(context.Background())
		if err != nil {
			t.Fatalf("Tiers returned error: %v", err)
		}
		if len(tiers) != 3 {
			t.Fatalf("expected 3 tiers, got %d", len(tiers))
		}
	}
	if repo.calls != 1 {
		t.Fatalf("expected 1 store read, got %d", repo.calls)
	}
}

func TestTierCache_RefreshesAfterInterval(t *testing.T) {
	repo := &countingTierRepo{tiers: standardTiers()}
	cache := NewTierCache(repo, 5*time.Minute)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	now := base
	cache.now = func() time.Time { return now }

	if _, err := cache.Tiers(context.Background()); err != nil {
		t.Fatalf("Tiers returned error: %v", err)
	}

	// Externally administered update lands between reads.
	repo.tiers = staticTiers{
		{MinPrice: dec("0"), RatePercentage: dec("9"), Description: "updated"},
	}

	now = base.Add(5 * time.Minute)
	tiers, err := cache.Tiers(context.Background())
	if err != nil {
		t.Fatalf("Tiers returned error: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("expected refresh after interval, got %d store reads", repo.calls)
	}
	if len(tiers) != 1 || tiers[0].Description != "updated" {
		t.Fatalf("expected refreshed snapshot, got %+v", tiers)
	}
}

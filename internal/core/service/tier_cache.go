package service

import (
	"context"
	"sync"
	"time"

	"github.com/housebroker/listing-api/internal/core/domain"
	"github.com/housebroker/listing-api/internal/core/ports"
)

const defaultTierRefresh = 5 * time.Minute

// TierCache memoizes the rarely-changing rate table in process memory,
// re-reading it from the repository once the refresh interval elapses. Stale
// data is never served past the interval: an expired snapshot is discarded
// even when the refresh fails.
type TierCache struct {
	repo    ports.CommissionRepository
	refresh time.Duration
	now     func() time.Time

	mu        sync.RWMutex
	snapshot  []domain.CommissionTier
	fetchedAt time.Time
}

func NewTierCache(repo ports.CommissionRepository, refresh time.Duration) *TierCache {
	if refresh <= 0 {
		refresh = defaultTierRefresh
	}
	return &TierCache{repo: repo, refresh: refresh, now: time.Now}
}

// Tiers returns the cached table, refreshing it from the store when expired.
func (c *TierCache) Tiers(ctx context.Context) ([]domain.CommissionTier, error) {
	c.mu.RLock()
	if c.snapshot != nil && c.now().Sub(c.fetchedAt) < c.refresh {
		tiers := c.snapshot
		c.mu.RUnlock()
		return tiers, nil
	}
	c.mu.RUnlock()

	tiers, err := c.repo.ListTiers(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.snapshot = tiers
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return tiers, nil
}

package cache

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/persistence"
)

// CachedLedgerStore serves user rows from the profile cache and falls back to
// the store on a miss. Cache failures are logged and never fail a read.
// Trade counts and history always come from the store.
type CachedLedgerStore struct {
	store  persistence.TradeLedgerStore
	cache  persistence.ProfileCache
	logger coreport.Logger
}

var _ persistence.TradeLedgerStore = (*CachedLedgerStore)(nil)

// NewCachedLedgerStore decorates store with cache
func NewCachedLedgerStore(store persistence.TradeLedgerStore, cache persistence.ProfileCache, logger coreport.Logger) *CachedLedgerStore {
	return &CachedLedgerStore{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// GetUser reads through the cache. Absent users are not cached.
func (s *CachedLedgerStore) GetUser(ctx context.Context, userID string) (*entity.User, bool, error) {
	user, hit, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("Profile cache read failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	} else if hit {
		return user, true, nil
	}

	user, found, err := s.store.GetUser(ctx, userID)
	if err != nil || !found {
		return user, found, err
	}

	if err := s.cache.Set(ctx, user); err != nil {
		s.logger.Warn("Profile cache write failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
	return user, true, nil
}

// IsBlocked answers from the cached user row when possible
func (s *CachedLedgerStore) IsBlocked(ctx context.Context, userID string) (bool, error) {
	user, found, err := s.GetUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return found && user.Blocked, nil
}

// CountTradesWithPartner delegates to the store
func (s *CachedLedgerStore) CountTradesWithPartner(ctx context.Context, userID, partnerID string) (int64, error) {
	return s.store.CountTradesWithPartner(ctx, userID, partnerID)
}

// CountTotalTrades delegates to the store
func (s *CachedLedgerStore) CountTotalTrades(ctx context.Context, userID string) (int64, error) {
	return s.store.CountTotalTrades(ctx, userID)
}

// GetUserTrades delegates to the store
func (s *CachedLedgerStore) GetUserTrades(ctx context.Context, userID string) (*entity.TradeHistory, error) {
	return s.store.GetUserTrades(ctx, userID)
}

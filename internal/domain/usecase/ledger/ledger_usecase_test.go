package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/trade-ledger/mocks/port/core"
	"github.com/amirhossein-jamali/trade-ledger/mocks/port/persistence"
)

func newUseCase(t *testing.T) (*LedgerUseCase, *persistence.MockTradeLedgerStore, *persistence.MockReputationWriter, *persistence.MockProfileCache) {
	store := persistence.NewMockTradeLedgerStore(t)
	writer := persistence.NewMockReputationWriter(t)
	cache := persistence.NewMockProfileCache(t)
	logger := core.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return NewLedgerUseCase(store, writer, cache, logger), store, writer, cache
}

func TestLedgerUseCase_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("should return profile with total trades", func(t *testing.T) {
		useCase, store, _, _ := newUseCase(t)
		store.EXPECT().GetUser(mock.Anything, "alice").
			Return(&entity.User{ID: "alice", ReputationPoints: 42}, true, nil).Once()
		store.EXPECT().CountTotalTrades(mock.Anything, "alice").Return(int64(7), nil).Once()

		profile, err := useCase.GetProfile(ctx, " alice ")

		require.NoError(t, err)
		assert.Equal(t, "alice", profile.UserID)
		assert.Equal(t, int64(42), profile.ReputationPoints)
		assert.False(t, profile.Blocked)
		assert.Equal(t, int64(7), profile.TotalTrades)
	})

	t.Run("should report absent user as not found", func(t *testing.T) {
		useCase, store, _, _ := newUseCase(t)
		store.EXPECT().GetUser(mock.Anything, "ghost").Return(nil, false, nil).Once()
		store.EXPECT().CountTotalTrades(mock.Anything, "ghost").Return(int64(0), nil).Once()

		profile, err := useCase.GetProfile(ctx, "ghost")

		assert.Nil(t, profile)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("should surface store failures", func(t *testing.T) {
		useCase, store, _, _ := newUseCase(t)
		store.EXPECT().GetUser(mock.Anything, "alice").
			Return(nil, false, errs.NewStoreError("get user", "alice", errors.New("EOF"))).Maybe()
		store.EXPECT().CountTotalTrades(mock.Anything, "alice").Return(int64(0), nil).Maybe()

		_, err := useCase.GetProfile(ctx, "alice")

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("should reject empty user ID", func(t *testing.T) {
		useCase, _, _, _ := newUseCase(t)

		_, err := useCase.GetProfile(ctx, "")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestLedgerUseCase_GetTradeHistory(t *testing.T) {
	ctx := context.Background()
	useCase, store, _, _ := newUseCase(t)

	history := &entity.TradeHistory{
		Given:    []entity.Trade{{ID: "t2", UserID: "alice", PartnerID: "bob", Type: entity.TradeGive}},
		Received: []entity.Trade{{ID: "t1", UserID: "bob", PartnerID: "alice", Type: entity.TradeGive, Timestamp: time.Now()}},
	}
	store.EXPECT().GetUserTrades(ctx, "alice").Return(history, nil).Once()

	got, err := useCase.GetTradeHistory(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, history, got)
}

func TestLedgerUseCase_GetPairStats(t *testing.T) {
	ctx := context.Background()

	t.Run("should return both counts", func(t *testing.T) {
		useCase, store, _, _ := newUseCase(t)
		store.EXPECT().CountTradesWithPartner(mock.Anything, "alice", "bob").Return(int64(3), nil).Once()
		store.EXPECT().CountTotalTrades(mock.Anything, "alice").Return(int64(9), nil).Once()

		stats, err := useCase.GetPairStats(ctx, "alice", "bob")

		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TradesWithPartner)
		assert.Equal(t, int64(9), stats.TotalTrades)
	})

	t.Run("should reject same user on both sides", func(t *testing.T) {
		useCase, _, _, _ := newUseCase(t)

		_, err := useCase.GetPairStats(ctx, "alice", "alice")

		assert.ErrorIs(t, err, errs.ErrSelfTrade)
	})
}

func TestLedgerUseCase_SetBlocked(t *testing.T) {
	ctx := context.Background()

	t.Run("should block and write the fresh row to the cache", func(t *testing.T) {
		useCase, _, writer, cache := newUseCase(t)
		blocked := &entity.User{ID: "alice", Blocked: true}
		writer.EXPECT().SetBlocked(ctx, "alice", true).Return(blocked, nil).Once()
		cache.EXPECT().Set(ctx, blocked).Return(nil).Once()

		user, err := useCase.SetBlocked(ctx, "alice", true)

		require.NoError(t, err)
		assert.True(t, user.Blocked)
	})

	t.Run("should fall back to invalidation and tolerate cache failure", func(t *testing.T) {
		useCase, _, writer, cache := newUseCase(t)
		writer.EXPECT().SetBlocked(ctx, "alice", false).Return(&entity.User{ID: "alice"}, nil).Once()
		cache.EXPECT().Set(ctx, mock.Anything).Return(errors.New("redis unavailable")).Once()
		cache.EXPECT().Invalidate(ctx, "alice").Return(errors.New("redis unavailable")).Once()

		user, err := useCase.SetBlocked(ctx, "alice", false)

		require.NoError(t, err)
		assert.False(t, user.Blocked)
	})

	t.Run("should not touch cache when write fails", func(t *testing.T) {
		useCase, _, writer, _ := newUseCase(t)
		writer.EXPECT().SetBlocked(ctx, "alice", true).
			Return(nil, errs.NewStoreError("set blocked", "alice", errors.New("EOF"))).Once()

		_, err := useCase.SetBlocked(ctx, "alice", true)

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

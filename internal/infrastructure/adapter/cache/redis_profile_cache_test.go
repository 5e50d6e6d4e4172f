package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/trade-ledger/mocks/port/core"
	"github.com/amirhossein-jamali/trade-ledger/mocks/port/persistence"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *RedisProfileCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisProfileCache(client, "", time.Minute, logger.NewNoopLogger())
}

func TestRedisProfileCache(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("miss then hit", func(t *testing.T) {
		_, cache := setupRedis(t)

		user, hit, err := cache.Get(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Nil(t, user)

		require.NoError(t, cache.Set(ctx, &entity.User{ID: "alice", ReputationPoints: 12, Blocked: true, CreatedAt: created, UpdatedAt: created}))

		user, hit, err = cache.Get(ctx, "alice")
		require.NoError(t, err)
		require.True(t, hit)
		assert.Equal(t, int64(12), user.ReputationPoints)
		assert.True(t, user.Blocked)
		assert.True(t, user.CreatedAt.Equal(created))
	})

	t.Run("entries expire", func(t *testing.T) {
		mr, cache := setupRedis(t)
		require.NoError(t, cache.Set(ctx, &entity.User{ID: "bob"}))
		assert.True(t, mr.Exists("profile:bob"))

		mr.FastForward(2 * time.Minute)

		_, hit, err := cache.Get(ctx, "bob")
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("invalidate removes the entry", func(t *testing.T) {
		mr, cache := setupRedis(t)
		require.NoError(t, cache.Set(ctx, &entity.User{ID: "carol"}))

		require.NoError(t, cache.Invalidate(ctx, "carol"))
		assert.False(t, mr.Exists("profile:carol"))
		require.NoError(t, cache.Invalidate(ctx, "carol"))
	})

	t.Run("corrupt entries are treated as misses", func(t *testing.T) {
		mr, cache := setupRedis(t)
		require.NoError(t, mr.Set("profile:dave", "{not json"))

		_, hit, err := cache.Get(ctx, "dave")
		require.NoError(t, err)
		assert.False(t, hit)
		assert.False(t, mr.Exists("profile:dave"))
	})

	t.Run("older row does not replace a newer one", func(t *testing.T) {
		_, cache := setupRedis(t)
		later := created.Add(time.Second)

		require.NoError(t, cache.Set(ctx, &entity.User{ID: "frank", Blocked: true, UpdatedAt: later}))
		require.NoError(t, cache.Set(ctx, &entity.User{ID: "frank", Blocked: false, UpdatedAt: created}))

		user, hit, err := cache.Get(ctx, "frank")
		require.NoError(t, err)
		require.True(t, hit)
		assert.True(t, user.Blocked)

		require.NoError(t, cache.Set(ctx, &entity.User{ID: "frank", ReputationPoints: 4, UpdatedAt: later.Add(time.Microsecond)}))
		user, _, err = cache.Get(ctx, "frank")
		require.NoError(t, err)
		assert.Equal(t, int64(4), user.ReputationPoints)
		assert.False(t, user.Blocked)
	})

	t.Run("server errors are reported", func(t *testing.T) {
		mr, cache := setupRedis(t)
		mr.SetError("LOADING")

		_, _, err := cache.Get(ctx, "erin")
		assert.Error(t, err)
	})
}

func TestCachedLedgerStore(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) (*CachedLedgerStore, *persistence.MockTradeLedgerStore, *miniredis.Miniredis) {
		mr, cache := setupRedis(t)
		store := persistence.NewMockTradeLedgerStore(t)
		log := core.NewMockLogger(t)
		log.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
		return NewCachedLedgerStore(store, cache, log), store, mr
	}

	t.Run("second read is served from cache", func(t *testing.T) {
		cached, store, _ := newStore(t)
		store.EXPECT().GetUser(mock.Anything, "alice").
			Return(&entity.User{ID: "alice", ReputationPoints: 3}, true, nil).Once()

		for i := 0; i < 2; i++ {
			user, found, err := cached.GetUser(ctx, "alice")
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, int64(3), user.ReputationPoints)
		}
	})

	t.Run("absent users are not cached", func(t *testing.T) {
		cached, store, mr := newStore(t)
		store.EXPECT().GetUser(mock.Anything, "ghost").Return(nil, false, nil).Twice()

		_, found, err := cached.GetUser(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, found)
		assert.False(t, mr.Exists("profile:ghost"))

		blocked, err := cached.IsBlocked(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, blocked)
	})

	t.Run("blocked flag comes from the cached row", func(t *testing.T) {
		cached, store, _ := newStore(t)
		store.EXPECT().GetUser(mock.Anything, "mallory").
			Return(&entity.User{ID: "mallory", Blocked: true}, true, nil).Once()

		blocked, err := cached.IsBlocked(ctx, "mallory")
		require.NoError(t, err)
		assert.True(t, blocked)

		blocked, err = cached.IsBlocked(ctx, "mallory")
		require.NoError(t, err)
		assert.True(t, blocked)
	})

	t.Run("reader loading before a block does not resurrect the old row", func(t *testing.T) {
		cached, store, _ := newStore(t)
		before := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
		after := before.Add(time.Second)

		// The moderation write commits and caches its row while the read is in flight
		store.EXPECT().GetUser(mock.Anything, "oscar").
			RunAndReturn(func(ctx context.Context, userID string) (*entity.User, bool, error) {
				require.NoError(t, cached.cache.Set(ctx, &entity.User{ID: userID, Blocked: true, UpdatedAt: after}))
				return &entity.User{ID: userID, Blocked: false, UpdatedAt: before}, true, nil
			}).Once()

		_, found, err := cached.GetUser(ctx, "oscar")
		require.NoError(t, err)
		require.True(t, found)

		blocked, err := cached.IsBlocked(ctx, "oscar")
		require.NoError(t, err)
		assert.True(t, blocked)
	})

	t.Run("cache outage falls back to the store", func(t *testing.T) {
		cached, store, mr := newStore(t)
		mr.SetError("LOADING")
		store.EXPECT().GetUser(mock.Anything, "alice").
			Return(&entity.User{ID: "alice", ReputationPoints: 9}, true, nil).Once()

		user, found, err := cached.GetUser(ctx, "alice")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, int64(9), user.ReputationPoints)
	})

	t.Run("store errors propagate", func(t *testing.T) {
		cached, store, _ := newStore(t)
		storeErr := errs.NewStoreError("get user", "alice", errors.New("EOF"))
		store.EXPECT().GetUser(mock.Anything, "alice").Return(nil, false, storeErr).Once()

		_, err := cached.IsBlocked(ctx, "alice")
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("counts and history bypass the cache", func(t *testing.T) {
		cached, store, _ := newStore(t)
		store.EXPECT().CountTradesWithPartner(mock.Anything, "alice", "bob").Return(int64(2), nil).Once()
		store.EXPECT().CountTotalTrades(mock.Anything, "alice").Return(int64(5), nil).Once()
		store.EXPECT().GetUserTrades(mock.Anything, "alice").Return(entity.NewTradeHistory("alice", nil), nil).Once()

		pair, err := cached.CountTradesWithPartner(ctx, "alice", "bob")
		require.NoError(t, err)
		total, err := cached.CountTotalTrades(ctx, "alice")
		require.NoError(t, err)
		history, err := cached.GetUserTrades(ctx, "alice")
		require.NoError(t, err)

		assert.Equal(t, int64(2), pair)
		assert.Equal(t, int64(5), total)
		assert.Equal(t, 0, history.Total())
	})
}

func TestNoopProfileCache(t *testing.T) {
	var cache NoopProfileCache
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &entity.User{ID: "alice"}))
	_, hit, err := cache.Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, cache.Invalidate(ctx, "alice"))
}

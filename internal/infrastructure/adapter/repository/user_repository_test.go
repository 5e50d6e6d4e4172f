package repository_test

import (
	"context"
	"sync"
	"testing"

	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_EnsureUser(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db, fixedClock(t, baseTime), logger.NewNoopLogger())
	ctx := context.Background()

	user, err := repo.EnsureUser(ctx, " alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.ID)
	assert.Equal(t, int64(0), user.ReputationPoints)

	_, err = repo.ApplyAward(ctx, "alice", 4)
	require.NoError(t, err)

	// A second ensure must not reset the stored reputation
	user, err = repo.EnsureUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(4), user.ReputationPoints)

	_, err = repo.EnsureUser(ctx, "  ")
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)
}

func TestUserRepository_ApplyAward(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the row on first award", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewUserRepository(db, fixedClock(t, baseTime), logger.NewNoopLogger())

		user, err := repo.ApplyAward(ctx, "bob", 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), user.ReputationPoints)

		user, err = repo.ApplyAward(ctx, "bob", 3)
		require.NoError(t, err)
		assert.Equal(t, int64(13), user.ReputationPoints)
	})

	t.Run("clamps the total at zero", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewUserRepository(db, fixedClock(t, baseTime), logger.NewNoopLogger())

		_, err := repo.ApplyAward(ctx, "carol", 2)
		require.NoError(t, err)

		user, err := repo.ApplyAward(ctx, "carol", -5)
		require.NoError(t, err)
		assert.Equal(t, int64(0), user.ReputationPoints)
	})

	t.Run("serializes concurrent awards", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewUserRepository(db, fixedClock(t, baseTime), logger.NewNoopLogger())

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.ApplyAward(ctx, "dave", 1)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		user, err := repo.EnsureUser(ctx, "dave")
		require.NoError(t, err)
		assert.Equal(t, int64(10), user.ReputationPoints)
	})

	t.Run("reports a lost compare-and-set", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewUserRepository(db, fixedClock(t, baseTime), logger.NewNoopLogger())

		_, err := repo.EnsureUser(ctx, "erin")
		require.NoError(t, err)

		// Another writer bumps the row between the locked read and the update
		fired := false
		require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:interleave", func(tx *gorm.DB) {
			if fired {
				return
			}
			fired = true
			tx.Session(&gorm.Session{NewDB: true}).
				Exec("UPDATE users SET reputation_points = reputation_points + 100 WHERE user_id = ?", "erin")
		}))

		_, err = repo.ApplyAward(ctx, "erin", 5)
		assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
		assert.True(t, errs.IsRetryableError(err))

		require.NoError(t, db.Callback().Update().Remove("test:interleave"))

		// The interleaved write shared the failed transaction, so nothing was kept
		user, err := repo.ApplyAward(ctx, "erin", 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), user.ReputationPoints)
	})
}

func TestUserRepository_SetBlocked(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db, fixedClock(t, baseTime), logger.NewNoopLogger())
	ctx := context.Background()

	user, err := repo.SetBlocked(ctx, "mallory", true)
	require.NoError(t, err)
	assert.True(t, user.Blocked)

	user, err = repo.SetBlocked(ctx, "mallory", false)
	require.NoError(t, err)
	assert.False(t, user.Blocked)
	assert.Equal(t, int64(0), user.ReputationPoints)
}

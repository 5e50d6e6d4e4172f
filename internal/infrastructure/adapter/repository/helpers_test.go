package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/repository"
	coremocks "github.com/amirhossein-jamali/trade-ledger/mocks/port/core"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return database.NewTestDBManager(t).Manager.DB()
}

func fixedClock(t *testing.T, now time.Time) *coremocks.MockTimeProvider {
	t.Helper()
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Maybe()
	return clock
}

func seedTrade(t *testing.T, db *gorm.DB, id, userID, partnerID string, tradeType entity.TradeType, offset time.Duration) *entity.Trade {
	t.Helper()
	trade := &entity.Trade{
		ID:        id,
		UserID:    userID,
		PartnerID: partnerID,
		Type:      tradeType,
		Item:      "item " + id,
		Timestamp: baseTime.Add(offset),
	}
	require.NoError(t, repository.NewTradeRepository(db, logger.NewNoopLogger()).Create(context.Background(), trade))
	return trade
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

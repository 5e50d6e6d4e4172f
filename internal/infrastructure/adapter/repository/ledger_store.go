package repository

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LedgerStore implements persistence.TradeLedgerStore using GORM
type LedgerStore struct {
	db     *gorm.DB
	logger coreport.Logger
}

var _ persistence.TradeLedgerStore = (*LedgerStore)(nil)

// NewLedgerStore creates a new LedgerStore instance
func NewLedgerStore(db *gorm.DB, logger coreport.Logger) *LedgerStore {
	return &LedgerStore{
		db:     db,
		logger: logger,
	}
}

// GetUser fetches a user row; a missing row is not an error
func (s *LedgerStore) GetUser(ctx context.Context, userID string) (*entity.User, bool, error) {
	var rows []model.User
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&rows)
	if result.Error != nil {
		return nil, false, s.fail("get user", userID, result.Error)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0].ToEntity(), true, nil
}

// IsBlocked reports the moderation flag, false when the user has no row
func (s *LedgerStore) IsBlocked(ctx context.Context, userID string) (bool, error) {
	var flags []bool
	result := s.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Limit(1).
		Pluck("blocked", &flags)
	if result.Error != nil {
		return false, s.fail("is blocked", userID, result.Error)
	}
	return len(flags) > 0 && flags[0], nil
}

// CountTradesWithPartner counts the unordered pair with one query so no row is counted twice
func (s *LedgerStore) CountTradesWithPartner(ctx context.Context, userID, partnerID string) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&model.Trade{}).
		Where("(user_id = ? AND partner_id = ?) OR (user_id = ? AND partner_id = ?)",
			userID, partnerID, partnerID, userID).
		Count(&count)
	if result.Error != nil {
		return 0, s.fail("count trades with partner", userID, result.Error)
	}
	return count, nil
}

// CountTotalTrades counts trades where the user is on either side
func (s *LedgerStore) CountTotalTrades(ctx context.Context, userID string) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&model.Trade{}).
		Where("user_id = ? OR partner_id = ?", userID, userID).
		Count(&count)
	if result.Error != nil {
		return 0, s.fail("count total trades", userID, result.Error)
	}
	return count, nil
}

// GetUserTrades lists the user's trades newest first, bucketed by the user's role
func (s *LedgerStore) GetUserTrades(ctx context.Context, userID string) (*entity.TradeHistory, error) {
	var rows []model.Trade
	result := s.db.WithContext(ctx).
		Where("user_id = ? OR partner_id = ?", userID, userID).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&rows)
	if result.Error != nil {
		return nil, s.fail("get user trades", userID, result.Error)
	}

	trades := make([]entity.Trade, 0, len(rows))
	for i := range rows {
		trades = append(trades, rows[i].ToEntity())
	}

	s.logger.Debug("User trades retrieved", map[string]any{
		"user_id": userID,
		"count":   len(trades),
	})

	return entity.NewTradeHistory(userID, trades), nil
}

// fail logs and wraps every query failure as ErrStoreUnavailable
func (s *LedgerStore) fail(operation, userID string, err error) error {
	s.logger.Error("Ledger query failed", map[string]any{
		"operation": operation,
		"user_id":   userID,
		"error":     err.Error(),
	})
	return errs.NewStoreError(operation, userID, err)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TradeRepository implements persistence.TradeRepository using GORM
type TradeRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

var _ persistence.TradeRepository = (*TradeRepository)(nil)

// NewTradeRepository creates a new TradeRepository instance
func NewTradeRepository(db *gorm.DB, logger coreport.Logger) *TradeRepository {
	return &TradeRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// Create saves a new trade
func (r *TradeRepository) Create(ctx context.Context, trade *entity.Trade) error {
	if err := r.db.WithContext(ctx).Create(model.TradeFromEntity(trade)).Error; err != nil {
		r.logger.Error("Failed to create trade", map[string]any{
			"trade_id": trade.ID,
			"user_id":  trade.UserID,
			"error":    err.Error(),
		})
		return r.errorMapper.MapError(err, "create trade", trade.UserID)
	}

	return nil
}

// GetByID retrieves a trade by its ID
func (r *TradeRepository) GetByID(ctx context.Context, tradeID string) (*entity.Trade, error) {
	var row model.Trade
	if err := r.db.WithContext(ctx).Where("id = ?", tradeID).Take(&row).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Error("Failed to get trade", map[string]any{
				"trade_id": tradeID,
				"error":    err.Error(),
			})
		}
		return nil, r.errorMapper.MapEntityNotFoundError(err, EntityTypeTrade, "get trade", tradeID)
	}

	trade := row.ToEntity()
	return &trade, nil
}

// MarkCompleted closes the trade only while completed_at is still NULL, so a
// trade can be rated once no matter how many callers race on it
func (r *TradeRepository) MarkCompleted(
	ctx context.Context,
	tradeID string,
	completedAt time.Time,
	rating entity.Rating,
) (*entity.Trade, error) {
	db := r.db.WithContext(ctx)

	result := db.Model(&model.Trade{}).
		Where("id = ? AND completed_at IS NULL", tradeID).
		Updates(map[string]any{
			"completed_at": completedAt,
			"rating":       int(rating),
		})
	if result.Error != nil {
		r.logger.Error("Failed to complete trade", map[string]any{
			"trade_id": tradeID,
			"error":    result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, "complete trade", "")
	}

	existing, err := r.GetByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", errs.ErrTradeAlreadyCompleted, tradeID)
	}

	return existing, nil
}

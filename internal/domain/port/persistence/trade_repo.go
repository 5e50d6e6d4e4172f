package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
)

// TradeRepository stores trade records
type TradeRepository interface {
	// Create saves a new trade
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the database fails
	Create(ctx context.Context, trade *entity.Trade) error

	// GetByID retrieves a trade by its ID
	//
	// Possible errors:
	// - ErrTradeNotFound: If no trade has that ID
	// - ErrStoreUnavailable: If the database fails
	GetByID(ctx context.Context, tradeID string) (*entity.Trade, error)

	// MarkCompleted closes an open trade with its rating. Only one caller can
	// complete a given trade.
	//
	// Possible errors:
	// - ErrTradeNotFound: If no trade has that ID
	// - ErrTradeAlreadyCompleted: If the trade was already rated
	// - ErrStoreUnavailable: If the database fails
	MarkCompleted(ctx context.Context, tradeID string, completedAt time.Time, rating entity.Rating) (*entity.Trade, error)
}

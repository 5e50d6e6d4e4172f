package persistence

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
)

// TradeLedgerStore answers the read queries that feed the reputation scorer
// and render trade history. Every failure wraps ErrStoreUnavailable; no
// business invariants are validated here.
type TradeLedgerStore interface {
	// GetUser fetches the stored reputation and blocked state.
	// A user without a row yields (nil, false, nil).
	GetUser(ctx context.Context, userID string) (*entity.User, bool, error)

	// IsBlocked reports the moderation flag, false when no row exists
	IsBlocked(ctx context.Context, userID string) (bool, error)

	// CountTradesWithPartner counts trades between the unordered pair,
	// each trade exactly once whichever side recorded it
	CountTradesWithPartner(ctx context.Context, userID, partnerID string) (int64, error)

	// CountTotalTrades counts trades where the user appears on either side
	CountTotalTrades(ctx context.Context, userID string) (int64, error)

	// GetUserTrades lists every trade involving the user, most recent first,
	// bucketed by the user's role in each trade
	GetUserTrades(ctx context.Context, userID string) (*entity.TradeHistory, error)
}

package usecase

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
)

// UserProfile is a user's public reputation summary
type UserProfile struct {
	UserID           string `json:"userId"`
	ReputationPoints int64  `json:"reputationPoints"`
	Blocked          bool   `json:"blocked"`
	TotalTrades      int64  `json:"totalTrades"`
}

// PairStats holds the counts the scorer would see for a pair
type PairStats struct {
	UserID            string `json:"userId"`
	PartnerID         string `json:"partnerId"`
	TradesWithPartner int64  `json:"tradesWithPartner"`
	TotalTrades       int64  `json:"totalTrades"`
}

// LedgerUseCase defines read and moderation operations on the ledger
type LedgerUseCase interface {
	// GetProfile returns ErrUserNotFound for users without a row
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)

	// GetTradeHistory returns the user's trades split by role, newest first
	GetTradeHistory(ctx context.Context, userID string) (*entity.TradeHistory, error)

	// GetPairStats returns the pair count and the user's total count
	GetPairStats(ctx context.Context, userID, partnerID string) (*PairStats, error)

	// SetBlocked toggles the moderation flag
	SetBlocked(ctx context.Context, userID string, blocked bool) (*entity.User, error)
}

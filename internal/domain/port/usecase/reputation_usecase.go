package usecase

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/reputation"
)

// RecordTradeRequest describes a trade from the recording user's side
type RecordTradeRequest struct {
	UserID    string `json:"userId"`
	PartnerID string `json:"partnerId"`
	Type      string `json:"type"`
	Item      string `json:"item"`
}

// ScoreTradeRequest records a completed trade and rates it in one step
type ScoreTradeRequest struct {
	RecordTradeRequest
	Rating float64 `json:"rating"`
}

// ScoreResult is the outcome of scoring one trade
type ScoreResult struct {
	Trade   *entity.Trade
	Award   int
	Factors reputation.Factors
	User    *entity.User // reputation after the award
}

// ReputationUpdateFlow turns rated trades into persisted reputation
type ReputationUpdateFlow interface {
	// RecordTrade stores an open trade. Both participants get a user row.
	// Blocked users cannot start trades.
	RecordTrade(ctx context.Context, req RecordTradeRequest) (*entity.Trade, error)

	// RecordAndScoreTrade stores an already completed trade and scores it
	RecordAndScoreTrade(ctx context.Context, req ScoreTradeRequest) (*ScoreResult, error)

	// ScoreTrade completes an open trade with a rating and awards the trade's user.
	// Counts are taken after the trade is recorded, so it is included in both.
	ScoreTrade(ctx context.Context, tradeID string, rating float64) (*ScoreResult, error)
}

package dto

import (
	"time"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/reputation"
)

// RecordTradeRequest represents the API request for recording a trade
type RecordTradeRequest struct {
	UserID    string `json:"userId" binding:"required"`
	PartnerID string `json:"partnerId" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Item      string `json:"item"`
}

// CompletedTradeRequest records a trade and rates it in one call
type CompletedTradeRequest struct {
	RecordTradeRequest
	Rating float64 `json:"rating" binding:"required"`
}

// RateTradeRequest rates an open trade
type RateTradeRequest struct {
	Rating float64 `json:"rating" binding:"required"`
}

// TradeResponse represents a stored trade
type TradeResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	PartnerID   string     `json:"partnerId"`
	Type        string     `json:"type"`
	Item        string     `json:"item"`
	Timestamp   time.Time  `json:"timestamp"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Rating      *int       `json:"rating,omitempty"`
}

// ScoreResponse is the outcome of rating a trade
type ScoreResponse struct {
	Trade            TradeResponse      `json:"trade"`
	Award            int                `json:"award"`
	ReputationPoints int64              `json:"reputationPoints"`
	Factors          reputation.Factors `json:"factors"`
}

// ToUseCase converts the request to its use case form
func (r RecordTradeRequest) ToUseCase() usecase.RecordTradeRequest {
	return usecase.RecordTradeRequest{
		UserID:    r.UserID,
		PartnerID: r.PartnerID,
		Type:      r.Type,
		Item:      r.Item,
	}
}

// NewTradeResponse maps a trade to its response
func NewTradeResponse(t *entity.Trade) TradeResponse {
	resp := TradeResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		PartnerID:   t.PartnerID,
		Type:        string(t.Type),
		Item:        t.Item,
		Timestamp:   t.Timestamp,
		CompletedAt: t.CompletedAt,
	}
	if t.Rating != nil {
		rating := int(*t.Rating)
		resp.Rating = &rating
	}
	return resp
}

// NewScoreResponse maps a score result to its response
func NewScoreResponse(r *usecase.ScoreResult) ScoreResponse {
	resp := ScoreResponse{
		Trade:   NewTradeResponse(r.Trade),
		Award:   r.Award,
		Factors: r.Factors,
	}
	if r.User != nil {
		resp.ReputationPoints = r.User.ReputationPoints
	}
	return resp
}

func newTradeResponses(trades []entity.Trade) []TradeResponse {
	out := make([]TradeResponse, 0, len(trades))
	for i := range trades {
		out = append(out, NewTradeResponse(&trades[i]))
	}
	return out
}

package dto

import (
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
)

// ProfileResponse represents a user's reputation profile
type ProfileResponse struct {
	UserID           string `json:"userId"`
	ReputationPoints int64  `json:"reputationPoints"`
	Blocked          bool   `json:"blocked"`
	TotalTrades      int64  `json:"totalTrades"`
}

// TradeHistoryResponse lists a user's trades split by role
type TradeHistoryResponse struct {
	UserID   string          `json:"userId"`
	Given    []TradeResponse `json:"given"`
	Received []TradeResponse `json:"received"`
}

// PairCountResponse carries the counts the scorer reads for a pair
type PairCountResponse struct {
	UserID            string `json:"userId"`
	PartnerID         string `json:"partnerId"`
	TradesWithPartner int64  `json:"tradesWithPartner"`
	TotalTrades       int64  `json:"totalTrades"`
}

// NewProfileResponse maps a profile to its response
func NewProfileResponse(p *usecase.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:           p.UserID,
		ReputationPoints: p.ReputationPoints,
		Blocked:          p.Blocked,
		TotalTrades:      p.TotalTrades,
	}
}

// NewTradeHistoryResponse maps a history to its response
func NewTradeHistoryResponse(userID string, h *entity.TradeHistory) TradeHistoryResponse {
	return TradeHistoryResponse{
		UserID:   userID,
		Given:    newTradeResponses(h.Given),
		Received: newTradeResponses(h.Received),
	}
}

// NewPairCountResponse maps pair stats to their response
func NewPairCountResponse(s *usecase.PairStats) PairCountResponse {
	return PairCountResponse{
		UserID:            s.UserID,
		PartnerID:         s.PartnerID,
		TradesWithPartner: s.TradesWithPartner,
		TotalTrades:       s.TotalTrades,
	}
}

package reputation

import (
	"fmt"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
)

// TradeValidator checks incoming trade requests before anything is stored
type TradeValidator struct{}

// NewTradeValidator creates a new TradeValidator
func NewTradeValidator() *TradeValidator {
	return &TradeValidator{}
}

// ValidateRecord normalizes the participant IDs, trade type and item
func (v *TradeValidator) ValidateRecord(req usecase.RecordTradeRequest) (usecase.RecordTradeRequest, error) {
	userID, err := entity.NormalizeUserID(req.UserID)
	if err != nil {
		return req, fmt.Errorf("user: %w", err)
	}

	partnerID, err := entity.NormalizeUserID(req.PartnerID)
	if err != nil {
		return req, fmt.Errorf("partner: %w", err)
	}

	if userID == partnerID {
		return req, errs.NewTradeError("", userID, partnerID, "partner equals user", errs.ErrSelfTrade)
	}

	tradeType, err := entity.ParseTradeType(req.Type)
	if err != nil {
		return req, err
	}

	item, err := entity.NormalizeItem(req.Item)
	if err != nil {
		return req, err
	}

	return usecase.RecordTradeRequest{
		UserID:    userID,
		PartnerID: partnerID,
		Type:      string(tradeType),
		Item:      item,
	}, nil
}

// ValidateRating accepts whole ratings from 1 to 5
func (v *TradeValidator) ValidateRating(rating float64) (entity.Rating, error) {
	return entity.ParseRating(rating)
}

// ValidateTradeID rejects empty trade IDs
func (v *TradeValidator) ValidateTradeID(tradeID string) error {
	if tradeID == "" {
		return fmt.Errorf("%w: trade ID cannot be empty", errs.ErrInvalidRequest)
	}
	return nil
}

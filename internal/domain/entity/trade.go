package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
)

// MaxItemLength bounds the free-text item description
const MaxItemLength = 2000

// TradeType describes the recorded user's role in a trade
type TradeType string

// Trade types
const (
	TradeGive    TradeType = "give"
	TradeReceive TradeType = "receive"
)

// IsValid reports whether the trade type is give or receive
func (t TradeType) IsValid() bool {
	return t == TradeGive || t == TradeReceive
}

// Complement returns the partner's role for a record of this type
func (t TradeType) Complement() TradeType {
	if t == TradeGive {
		return TradeReceive
	}
	return TradeGive
}

// ParseTradeType parses a trade type case-insensitively
func ParseTradeType(s string) (TradeType, error) {
	tradeType := TradeType(strings.ToLower(strings.TrimSpace(s)))
	if !tradeType.IsValid() {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidTradeType, s)
	}
	return tradeType, nil
}

// Trade is a single exchange between a user and a partner.
// Type is always from UserID's point of view.
type Trade struct {
	ID          string
	UserID      string
	PartnerID   string
	Type        TradeType
	Item        string
	Timestamp   time.Time
	CompletedAt *time.Time // nil while the trade is open
	Rating      *Rating    // set together with CompletedAt
}

// NormalizeItem trims the description and requires 1..MaxItemLength characters
func NormalizeItem(item string) (string, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return "", fmt.Errorf("%w: description is required", errs.ErrInvalidItem)
	}
	if utf8.RuneCountInString(item) > MaxItemLength {
		return "", fmt.Errorf("%w: description exceeds %d characters", errs.ErrInvalidItem, MaxItemLength)
	}
	return item, nil
}

// NewTrade validates the participants and builds an open trade
func NewTrade(
	id string,
	userID string,
	partnerID string,
	tradeType string,
	item string,
	timeProvider coreport.TimeProvider,
) (*Trade, error) {
	userID, err := NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}
	partnerID, err = NormalizeUserID(partnerID)
	if err != nil {
		return nil, err
	}
	if userID == partnerID {
		return nil, errs.NewTradeError(id, userID, partnerID, "partner equals user", errs.ErrSelfTrade)
	}

	parsedType, err := ParseTradeType(tradeType)
	if err != nil {
		return nil, err
	}

	item, err = NormalizeItem(item)
	if err != nil {
		return nil, err
	}

	return &Trade{
		ID:        id,
		UserID:    userID,
		PartnerID: partnerID,
		Type:      parsedType,
		Item:      item,
		Timestamp: timeProvider.Now(),
	}, nil
}

// Involves reports whether the user is either side of the trade
func (t *Trade) Involves(userID string) bool {
	return t.UserID == userID || t.PartnerID == userID
}

// RoleFor returns the trade type from the given user's perspective
func (t *Trade) RoleFor(userID string) TradeType {
	if userID == t.UserID {
		return t.Type
	}
	return t.Type.Complement()
}

// PartnerOf returns the other participant
func (t *Trade) PartnerOf(userID string) string {
	if userID == t.UserID {
		return t.PartnerID
	}
	return t.UserID
}

// IsCompleted reports whether the trade has been rated and closed
func (t *Trade) IsCompleted() bool {
	return t.CompletedAt != nil
}

// Complete closes an open trade with a rating
func (t *Trade) Complete(rating Rating, timeProvider coreport.TimeProvider) error {
	if t.IsCompleted() {
		return errs.NewTradeError(t.ID, t.UserID, t.PartnerID, "trade already rated", errs.ErrTradeAlreadyCompleted)
	}
	if !rating.IsValid() {
		return errs.ErrInvalidRating
	}
	at := timeProvider.Now()
	t.Rating = &rating
	t.CompletedAt = &at
	return nil
}

// Clone returns a deep copy of the trade
func (t *Trade) Clone() *Trade {
	clone := *t
	if t.CompletedAt != nil {
		completedAt := *t.CompletedAt
		clone.CompletedAt = &completedAt
	}
	if t.Rating != nil {
		rating := *t.Rating
		clone.Rating = &rating
	}
	return &clone
}

// TradeHistory partitions a user's trades by their role, most recent first
type TradeHistory struct {
	Given    []Trade
	Received []Trade
}

// NewTradeHistory buckets trades by the user's role. Input order is preserved.
func NewTradeHistory(userID string, trades []Trade) *TradeHistory {
	history := &TradeHistory{
		Given:    []Trade{},
		Received: []Trade{},
	}
	for _, trade := range trades {
		if !trade.Involves(userID) {
			continue
		}
		if trade.RoleFor(userID) == TradeGive {
			history.Given = append(history.Given, trade)
		} else {
			history.Received = append(history.Received, trade)
		}
	}
	return history
}

// Total returns the number of trades in the history
func (h *TradeHistory) Total() int {
	return len(h.Given) + len(h.Received)
}

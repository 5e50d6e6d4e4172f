package model

import (
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
)

// ToEntity converts a user row to the domain entity
func (u *User) ToEntity() *entity.User {
	return &entity.User{
		ID:               u.UserID,
		ReputationPoints: u.ReputationPoints,
		Blocked:          u.Blocked,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// UserFromEntity converts a domain user to its row
func UserFromEntity(u *entity.User) *User {
	return &User{
		UserID:           u.ID,
		ReputationPoints: u.ReputationPoints,
		Blocked:          u.Blocked,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// ToEntity converts a trade row to the domain entity
func (t *Trade) ToEntity() entity.Trade {
	trade := entity.Trade{
		ID:          t.ID,
		UserID:      t.UserID,
		PartnerID:   t.PartnerID,
		Type:        entity.TradeType(t.Type),
		Item:        t.Item,
		Timestamp:   t.Timestamp,
		CompletedAt: t.CompletedAt,
	}
	if t.Rating != nil {
		rating := entity.Rating(*t.Rating)
		trade.Rating = &rating
	}
	return trade
}

// TradeFromEntity converts a domain trade to its row
func TradeFromEntity(t *entity.Trade) *Trade {
	row := &Trade{
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
		row.Rating = &rating
	}
	return row
}

// ToEntity converts a report row to the domain entity
func (r *Report) ToEntity() entity.Report {
	return entity.Report{
		ID:         r.ID,
		ReporterID: r.ReporterID,
		ReportedID: r.ReportedID,
		MessageID:  r.MessageID,
		TradeID:    r.TradeID,
		Timestamp:  r.Timestamp,
	}
}

// ReportFromEntity converts a domain report to its row
func ReportFromEntity(r *entity.Report) *Report {
	return &Report{
		ID:         r.ID,
		ReporterID: r.ReporterID,
		ReportedID: r.ReportedID,
		MessageID:  r.MessageID,
		TradeID:    r.TradeID,
		Timestamp:  r.Timestamp,
	}
}

package model

import (
	"time"
)

// Trade represents the database model for trades.
// Type is the role of UserID in the trade.
type Trade struct {
	ID          string    `gorm:"primaryKey;size:64"`
	UserID      string    `gorm:"not null;size:64;index:idx_trades_user_id"`
	PartnerID   string    `gorm:"not null;size:64;index:idx_trades_partner_id"`
	Type        string    `gorm:"not null;size:8;check:chk_trades_type,type IN ('give','receive')"`
	Item        string    `gorm:"type:text"`
	Timestamp   time.Time `gorm:"not null;index:idx_trades_timestamp"`
	CompletedAt *time.Time
	Rating      *int `gorm:"check:chk_trades_rating,rating IS NULL OR rating BETWEEN 1 AND 5"`
}

// TableName specifies the table name for Trade
func (Trade) TableName() string {
	return "trades"
}

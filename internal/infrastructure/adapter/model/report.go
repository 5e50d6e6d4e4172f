package model

import (
	"time"
)

// Report represents the database model for misconduct reports
type Report struct {
	ID         string    `gorm:"primaryKey;size:64"`
	ReporterID string    `gorm:"not null;size:64"`
	ReportedID string    `gorm:"not null;size:64"`
	MessageID  string    `gorm:"size:64"`
	TradeID    string    `gorm:"not null;size:64;index:idx_reports_trade_id"`
	Timestamp  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Report
func (Report) TableName() string {
	return "reports"
}

package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
)

// Report is a misconduct claim tied to a trade and the message that triggered it
type Report struct {
	ID         string
	ReporterID string
	ReportedID string
	MessageID  string
	TradeID    string
	Timestamp  time.Time
}

// NewReport validates a report against the trade it references
func NewReport(
	id string,
	reporterID string,
	reportedID string,
	messageID string,
	trade *Trade,
	timeProvider coreport.TimeProvider,
) (*Report, error) {
	reporterID, err := NormalizeUserID(reporterID)
	if err != nil {
		return nil, err
	}
	reportedID, err = NormalizeUserID(reportedID)
	if err != nil {
		return nil, err
	}
	if reporterID == reportedID {
		return nil, fmt.Errorf("%w: users cannot report themselves", errs.ErrInvalidReport)
	}
	if trade == nil {
		return nil, errs.ErrTradeNotFound
	}
	if !trade.Involves(reporterID) || trade.PartnerOf(reporterID) != reportedID {
		return nil, fmt.Errorf("%w: trade %s is not between %s and %s",
			errs.ErrInvalidReport, trade.ID, reporterID, reportedID)
	}

	return &Report{
		ID:         id,
		ReporterID: reporterID,
		ReportedID: reportedID,
		MessageID:  strings.TrimSpace(messageID),
		TradeID:    trade.ID,
		Timestamp:  timeProvider.Now(),
	}, nil
}

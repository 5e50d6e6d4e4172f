package dto

import (
	"time"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
)

// FileReportRequest represents the API request for reporting a trade partner
type FileReportRequest struct {
	ReporterID string `json:"reporterId" binding:"required"`
	ReportedID string `json:"reportedId" binding:"required"`
	MessageID  string `json:"messageId"`
}

// ReportResponse represents a stored report
type ReportResponse struct {
	ID         string    `json:"id"`
	TradeID    string    `json:"tradeId"`
	ReporterID string    `json:"reporterId"`
	ReportedID string    `json:"reportedId"`
	MessageID  string    `json:"messageId"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewReportResponse maps a report to its response
func NewReportResponse(r *entity.Report) ReportResponse {
	return ReportResponse{
		ID:         r.ID,
		TradeID:    r.TradeID,
		ReporterID: r.ReporterID,
		ReportedID: r.ReportedID,
		MessageID:  r.MessageID,
		Timestamp:  r.Timestamp,
	}
}

// NewReportResponses maps a list of reports
func NewReportResponses(reports []entity.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, NewReportResponse(&reports[i]))
	}
	return out
}

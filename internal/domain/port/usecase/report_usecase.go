package usecase

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
)

// FileReportRequest is a misconduct claim against a trade partner
type FileReportRequest struct {
	TradeID    string `json:"tradeId"`
	ReporterID string `json:"reporterId"`
	ReportedID string `json:"reportedId"`
	MessageID  string `json:"messageId"`
}

// ReportUseCase defines report operations
type ReportUseCase interface {
	FileReport(ctx context.Context, req FileReportRequest) (*entity.Report, error)
	ListReports(ctx context.Context, tradeID string) ([]entity.Report, error)
}

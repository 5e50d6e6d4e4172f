package persistence

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
)

// ReportRepository stores misconduct reports
type ReportRepository interface {
	// Create saves a new report
	Create(ctx context.Context, report *entity.Report) error

	// ListByTrade returns the reports filed against a trade, oldest first
	ListByTrade(ctx context.Context, tradeID string) ([]entity.Report, error)
}

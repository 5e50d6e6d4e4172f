package repository

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ReportRepository implements persistence.ReportRepository using GORM
type ReportRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

var _ persistence.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository creates a new ReportRepository instance
func NewReportRepository(db *gorm.DB, logger coreport.Logger) *ReportRepository {
	return &ReportRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// Create saves a new report
func (r *ReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if err := r.db.WithContext(ctx).Create(model.ReportFromEntity(report)).Error; err != nil {
		r.logger.Error("Failed to create report", map[string]any{
			"report_id": report.ID,
			"trade_id":  report.TradeID,
			"error":     err.Error(),
		})
		return r.errorMapper.MapError(err, "create report", report.ReporterID)
	}
	return nil
}

// ListByTrade returns the reports filed against a trade, oldest first
func (r *ReportRepository) ListByTrade(ctx context.Context, tradeID string) ([]entity.Report, error) {
	var rows []model.Report
	err := r.db.WithContext(ctx).
		Where("trade_id = ?", tradeID).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("Failed to list reports", map[string]any{
			"trade_id": tradeID,
			"error":    err.Error(),
		})
		return nil, r.errorMapper.MapError(err, "list reports", "")
	}

	reports := make([]entity.Report, 0, len(rows))
	for i := range rows {
		reports = append(reports, rows[i].ToEntity())
	}
	return reports, nil
}

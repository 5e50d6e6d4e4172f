package report

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
)

// Service files and lists misconduct reports. Reports never affect scoring.
type Service struct {
	reports      persistence.ReportRepository
	trades       persistence.TradeRepository
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.ReportUseCase = (*Service)(nil)

// NewService creates a new report service
func NewService(
	reports persistence.ReportRepository,
	trades persistence.TradeRepository,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		reports:      reports,
		trades:       trades,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// FileReport stores a report after checking it names the trade's two participants
func (s *Service) FileReport(ctx context.Context, req usecase.FileReportRequest) (*entity.Report, error) {
	if req.TradeID == "" {
		return nil, fmt.Errorf("%w: trade ID cannot be empty", errs.ErrInvalidRequest)
	}

	trade, err := s.trades.GetByID(ctx, req.TradeID)
	if err != nil {
		return nil, err
	}

	report, err := entity.NewReport(s.ids.NewID(), req.ReporterID, req.ReportedID, req.MessageID, trade, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info("Report filed", map[string]any{
		"report_id":   report.ID,
		"trade_id":    report.TradeID,
		"reporter_id": report.ReporterID,
		"reported_id": report.ReportedID,
	})

	return report, nil
}

// ListReports returns the reports filed against a trade
func (s *Service) ListReports(ctx context.Context, tradeID string) ([]entity.Report, error) {
	if _, err := s.trades.GetByID(ctx, tradeID); err != nil {
		return nil, err
	}
	return s.reports.ListByTrade(ctx, tradeID)
}

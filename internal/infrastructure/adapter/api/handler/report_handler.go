package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles misconduct reports
type ReportHandler struct {
	reports usecase.ReportUseCase
	logger  coreport.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(reports usecase.ReportUseCase, logger coreport.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		logger:  logger,
	}
}

// FileReport handles the POST /trades/{tradeId}/reports endpoint
func (h *ReportHandler) FileReport(c *gin.Context) {
	tradeID := c.Param("tradeId")

	var req dto.FileReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	report, err := h.reports.FileReport(c.Request.Context(), usecase.FileReportRequest{
		TradeID:    tradeID,
		ReporterID: req.ReporterID,
		ReportedID: req.ReportedID,
		MessageID:  req.MessageID,
	})
	if err != nil {
		respondError(c, h.logger, "Error filing report", err, map[string]any{
			"trade_id":    tradeID,
			"reporter_id": req.ReporterID,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.NewReportResponse(report))
}

// ListReports handles the GET /trades/{tradeId}/reports endpoint
func (h *ReportHandler) ListReports(c *gin.Context) {
	tradeID := c.Param("tradeId")

	reports, err := h.reports.ListReports(c.Request.Context(), tradeID)
	if err != nil {
		respondError(c, h.logger, "Error listing reports", err, map[string]any{"trade_id": tradeID})
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponses(reports))
}

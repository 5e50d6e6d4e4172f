package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TradeHandler handles trade recording and rating
type TradeHandler struct {
	flow   usecase.ReputationUpdateFlow
	logger coreport.Logger
}

// NewTradeHandler creates a new trade handler instance
func NewTradeHandler(flow usecase.ReputationUpdateFlow, logger coreport.Logger) *TradeHandler {
	return &TradeHandler{
		flow:   flow,
		logger: logger,
	}
}

// RecordTrade handles the POST /trades endpoint
func (h *TradeHandler) RecordTrade(c *gin.Context) {
	var req dto.RecordTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	trade, err := h.flow.RecordTrade(c.Request.Context(), req.ToUseCase())
	if err != nil {
		respondError(c, h.logger, "Error recording trade", err, map[string]any{
			"user_id":    req.UserID,
			"partner_id": req.PartnerID,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.NewTradeResponse(trade))
}

// RecordCompletedTrade handles the POST /trades/completed endpoint
func (h *TradeHandler) RecordCompletedTrade(c *gin.Context) {
	var req dto.CompletedTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	result, err := h.flow.RecordAndScoreTrade(c.Request.Context(), usecase.ScoreTradeRequest{
		RecordTradeRequest: req.ToUseCase(),
		Rating:             req.Rating,
	})
	if err != nil {
		respondError(c, h.logger, "Error scoring completed trade", err, map[string]any{
			"user_id":    req.UserID,
			"partner_id": req.PartnerID,
			"rating":     req.Rating,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.NewScoreResponse(result))
}

// RateTrade handles the POST /trades/{tradeId}/rating endpoint
func (h *TradeHandler) RateTrade(c *gin.Context) {
	tradeID := c.Param("tradeId")

	var req dto.RateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	result, err := h.flow.ScoreTrade(c.Request.Context(), tradeID, req.Rating)
	if err != nil {
		respondError(c, h.logger, "Error rating trade", err, map[string]any{
			"trade_id": tradeID,
			"rating":   req.Rating,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewScoreResponse(result))
}

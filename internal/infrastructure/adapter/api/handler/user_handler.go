package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		ledger: ledger,
		logger: logger,
	}
}

// GetProfile handles the GET /users/{userId} endpoint
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.Param("userId")

	profile, err := h.ledger.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Error getting user profile", err, map[string]any{"user_id": userID})
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// GetTrades handles the GET /users/{userId}/trades endpoint
func (h *UserHandler) GetTrades(c *gin.Context) {
	userID := c.Param("userId")

	history, err := h.ledger.GetTradeHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Error getting trade history", err, map[string]any{"user_id": userID})
		return
	}

	c.JSON(http.StatusOK, dto.NewTradeHistoryResponse(userID, history))
}

// GetPairCount handles the GET /users/{userId}/partners/{partnerId}/count endpoint
func (h *UserHandler) GetPairCount(c *gin.Context) {
	userID := c.Param("userId")
	partnerID := c.Param("partnerId")

	stats, err := h.ledger.GetPairStats(c.Request.Context(), userID, partnerID)
	if err != nil {
		respondError(c, h.logger, "Error counting trades", err, map[string]any{
			"user_id":    userID,
			"partner_id": partnerID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewPairCountResponse(stats))
}

package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to its status and code.
// Server-side failures are logged and their detail is not exposed.
func respondError(c *gin.Context, logger coreport.Logger, message string, err error, fields map[string]any) {
	status := domainerr.HTTPStatus(err)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	requestID := coreport.RequestIDFromContext(c.Request.Context())
	fields["request_id"] = requestID

	var logged interface{ LogFields() map[string]any }
	if errors.As(err, &logged) {
		for k, v := range logged.LogFields() {
			fields[k] = v
		}
	}

	body := dto.ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   err.Error(),
		RequestID: requestID,
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(message, fields)
		if domainerr.IsStoreUnavailableError(err) {
			body.Message = "Ledger store unavailable"
		} else {
			body.Message = "Internal server error"
		}
	case status == http.StatusConflict || status == http.StatusUnprocessableEntity:
		logger.Warn(message, fields)
	default:
		logger.Debug(message, fields)
	}

	_ = c.Error(err)
	c.JSON(status, body)
}

// respondBindError reports a malformed request body
func respondBindError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Debug("Invalid request format", map[string]any{
		"error": err.Error(),
		"path":  c.FullPath(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:      domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message:   "Invalid request format: " + err.Error(),
		RequestID: coreport.RequestIDFromContext(c.Request.Context()),
	})
}

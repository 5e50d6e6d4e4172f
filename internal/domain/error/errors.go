package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRating         = 4001
	CodeInvalidTradeType      = 4002
	CodeInvalidUserID         = 4003
	CodeSelfTrade             = 4004
	CodeInvalidRequest        = 4005
	CodeInvalidReport         = 4006
	CodeInvalidItem           = 4007
	CodeUserBlocked           = 4030
	CodeUserNotFound          = 4040
	CodeTradeNotFound         = 4041
	CodeTradeAlreadyCompleted = 4090
	CodeConcurrentUpdate      = 4091
	CodeInvalidTradeHistory   = 4220

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeStoreUnavailable = 5030
)

// Base error types
var (
	// ErrInvalidTradeHistory is returned when a partner count exceeds the user's total trade count
	ErrInvalidTradeHistory = errors.New("invalid trade history")

	// ErrStoreUnavailable is returned when the ledger store cannot be reached or a query fails
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrInvalidRating is returned when a rating is outside 1..5
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

	// ErrInvalidUserID is returned when a user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidTradeType is returned when the trade type is not give or receive
	ErrInvalidTradeType = errors.New("invalid trade type")

	// ErrSelfTrade is returned when a user tries to trade with themselves
	ErrSelfTrade = errors.New("user cannot trade with themselves")

	// ErrUserBlocked is returned when a blocked user attempts a trade
	ErrUserBlocked = errors.New("user is blocked from trading")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTradeNotFound is returned when the requested trade doesn't exist
	ErrTradeNotFound = errors.New("trade not found")

	// ErrTradeAlreadyCompleted is returned when a trade is rated a second time
	ErrTradeAlreadyCompleted = errors.New("trade is already completed")

	// ErrConcurrentUpdate is returned when a reputation write lost a compare-and-set race
	ErrConcurrentUpdate = errors.New("reputation was modified concurrently")

	// ErrInvalidReport is returned when a report does not reference a matching trade
	ErrInvalidReport = errors.New("invalid report")

	// ErrInvalidItem is returned when a trade item description is missing or too long
	ErrInvalidItem = errors.New("invalid trade item")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidTradeHistory):
		return CodeInvalidTradeHistory
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	case errors.Is(err, ErrInvalidRating):
		return CodeInvalidRating
	case errors.Is(err, ErrInvalidTradeType):
		return CodeInvalidTradeType
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrSelfTrade):
		return CodeSelfTrade
	case errors.Is(err, ErrInvalidReport):
		return CodeInvalidReport
	case errors.Is(err, ErrInvalidItem):
		return CodeInvalidItem
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUserBlocked):
		return CodeUserBlocked
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTradeNotFound):
		return CodeTradeNotFound
	case errors.Is(err, ErrTradeAlreadyCompleted):
		return CodeTradeAlreadyCompleted
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status the API responds with
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrInvalidTradeType),
		errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrSelfTrade),
		errors.Is(err, ErrInvalidReport),
		errors.Is(err, ErrInvalidItem),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserBlocked):
		return http.StatusForbidden
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrTradeAlreadyCompleted), errors.Is(err, ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidTradeHistory):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// InvalidTradeHistoryError carries the normalized counts that violated the scorer precondition
type InvalidTradeHistoryError struct {
	TotalTrades       int64
	TradesWithPartner int64
}

// Error implements the error interface
func (e *InvalidTradeHistoryError) Error() string {
	return fmt.Sprintf("%s: %d trades with partner exceeds %d total trades",
		ErrInvalidTradeHistory.Error(), e.TradesWithPartner, e.TotalTrades)
}

// Is checks if the target error is an ErrInvalidTradeHistory
func (e *InvalidTradeHistoryError) Is(target error) bool {
	return target == ErrInvalidTradeHistory
}

// LogFields returns a map of fields for structured logging
func (e *InvalidTradeHistoryError) LogFields() map[string]any {
	return map[string]any{
		"error_type":          "invalid_trade_history",
		"total_trades":        e.TotalTrades,
		"trades_with_partner": e.TradesWithPartner,
		"error_code":          CodeInvalidTradeHistory,
	}
}

// NewInvalidTradeHistoryError creates a detailed invalid trade history error
func NewInvalidTradeHistoryError(totalTrades, tradesWithPartner int64) error {
	return &InvalidTradeHistoryError{
		TotalTrades:       totalTrades,
		TradesWithPartner: tradesWithPartner,
	}
}

// StoreError represents a failed ledger store operation
type StoreError struct {
	Operation string
	UserID    string
	Err       error
}

// Error implements the error interface for StoreError
func (e *StoreError) Error() string {
	if e.UserID == "" {
		return fmt.Sprintf("%s: %s: %v", ErrStoreUnavailable.Error(), e.Operation, e.Err)
	}
	return fmt.Sprintf("%s: %s (user %s): %v", ErrStoreUnavailable.Error(), e.Operation, e.UserID, e.Err)
}

// Is reports whether target is ErrStoreUnavailable
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_unavailable",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"error":      e.Err.Error(),
		"error_code": CodeStoreUnavailable,
	}
}

// NewStoreError wraps a storage failure so it matches ErrStoreUnavailable
func NewStoreError(operation, userID string, err error) error {
	return &StoreError{
		Operation: operation,
		UserID:    userID,
		Err:       err,
	}
}

// TradeError represents an error tied to a specific trade
type TradeError struct {
	TradeID   string
	UserID    string
	PartnerID string
	Reason    string
	Err       error
}

// Error implements the error interface for TradeError
func (e *TradeError) Error() string {
	return fmt.Sprintf("trade error for ID %s (user: %s, partner: %s): %s - %v",
		e.TradeID, e.UserID, e.PartnerID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TradeError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TradeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "trade_error",
		"trade_id":   e.TradeID,
		"user_id":    e.UserID,
		"partner_id": e.PartnerID,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTradeError creates a detailed trade error
func NewTradeError(tradeID, userID, partnerID, reason string, err error) error {
	return &TradeError{
		TradeID:   tradeID,
		UserID:    userID,
		PartnerID: partnerID,
		Reason:    reason,
		Err:       err,
	}
}

// IsInvalidTradeHistoryError checks if the error is a scorer precondition violation
func IsInvalidTradeHistoryError(err error) bool {
	return errors.Is(err, ErrInvalidTradeHistory)
}

// IsStoreUnavailableError checks if the error came from the ledger store
func IsStoreUnavailableError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTradeNotFound)
}

// IsRetryableError reports whether a caller may retry the failed operation.
// Scorer precondition failures are deterministic and never retryable.
func IsRetryableError(err error) bool {
	if err == nil || IsInvalidTradeHistoryError(err) {
		return false
	}
	return errors.Is(err, ErrConcurrentUpdate) || errors.Is(err, ErrStoreUnavailable)
}

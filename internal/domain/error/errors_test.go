package error

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidTradeHistory", ErrInvalidTradeHistory, 4220},
		{"StoreUnavailable", ErrStoreUnavailable, 5030},
		{"InvalidRating", ErrInvalidRating, 4001},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"SelfTrade", ErrSelfTrade, 4004},
		{"UserBlocked", ErrUserBlocked, 4030},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"TradeNotFound", ErrTradeNotFound, 4041},
		{"TradeAlreadyCompleted", ErrTradeAlreadyCompleted, 4090},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
		{"DetailedHistoryError", NewInvalidTradeHistoryError(3, 4), 4220},
		{"DetailedStoreError", NewStoreError("count trades", "u1", errors.New("dial tcp")), 5030},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"BadRating", ErrInvalidRating, http.StatusBadRequest},
		{"Blocked", ErrUserBlocked, http.StatusForbidden},
		{"MissingTrade", ErrTradeNotFound, http.StatusNotFound},
		{"AlreadyCompleted", ErrTradeAlreadyCompleted, http.StatusConflict},
		{"HistoryViolation", NewInvalidTradeHistoryError(1, 2), http.StatusUnprocessableEntity},
		{"StoreDown", NewStoreError("get user", "u1", errors.New("EOF")), http.StatusServiceUnavailable},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
			}
		})
	}
}

func TestInvalidTradeHistoryError(t *testing.T) {
	err := NewInvalidTradeHistoryError(3, 4)
	if err == nil {
		t.Fatal("NewInvalidTradeHistoryError returned nil")
	}

	expectedErrMsg := "invalid trade history: 4 trades with partner exceeds 3 total trades"
	if err.Error() != expectedErrMsg {
		t.Errorf("InvalidTradeHistoryError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInvalidTradeHistory) {
		t.Errorf("errors.Is(err, ErrInvalidTradeHistory) = false, want true")
	}

	if !IsInvalidTradeHistoryError(fmt.Errorf("scoring: %w", err)) {
		t.Errorf("IsInvalidTradeHistoryError(wrapped) = false, want true")
	}

	var detailed *InvalidTradeHistoryError
	if !errors.As(err, &detailed) {
		t.Fatalf("errors.As failed: not a *InvalidTradeHistoryError")
	}
	if detailed.LogFields()["trades_with_partner"] != int64(4) {
		t.Errorf("LogFields trades_with_partner = %v, want 4", detailed.LogFields()["trades_with_partner"])
	}
}

func TestStoreError(t *testing.T) {
	cause := context.DeadlineExceeded
	err := NewStoreError("count total trades", "alice", cause)

	expectedErrMsg := "ledger store unavailable: count total trades (user alice): context deadline exceeded"
	if err.Error() != expectedErrMsg {
		t.Errorf("StoreError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("errors.Is(err, ErrStoreUnavailable) = false, want true")
	}

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("errors.Is(err, context.DeadlineExceeded) = false, want true")
	}

	noUser := NewStoreError("migrate", "", cause)
	if noUser.Error() != "ledger store unavailable: migrate: context deadline exceeded" {
		t.Errorf("StoreError.Error() without user = %s", noUser.Error())
	}
}

func TestTradeError(t *testing.T) {
	tradeErr := NewTradeError("t-1", "alice", "alice", "partner equals user", ErrSelfTrade)

	expectedErrMsg := "trade error for ID t-1 (user: alice, partner: alice): partner equals user - user cannot trade with themselves"
	if tradeErr.Error() != expectedErrMsg {
		t.Errorf("TradeError.Error() = %s, want %s", tradeErr.Error(), expectedErrMsg)
	}

	if !errors.Is(tradeErr, ErrSelfTrade) {
		t.Errorf("errors.Is(tradeErr, ErrSelfTrade) = false, want true")
	}

	var cast *TradeError
	if !errors.As(tradeErr, &cast) {
		t.Fatalf("errors.As failed: not a *TradeError")
	}
	if cast.LogFields()["error_code"] != CodeSelfTrade {
		t.Errorf("LogFields error_code = %v, want %d", cast.LogFields()["error_code"], CodeSelfTrade)
	}
}

func TestIsRetryableError(t *testing.T) {
	if IsRetryableError(nil) {
		t.Errorf("IsRetryableError(nil) = true, want false")
	}

	if IsRetryableError(NewInvalidTradeHistoryError(1, 5)) {
		t.Errorf("IsRetryableError(history violation) = true, want false")
	}

	if !IsRetryableError(ErrConcurrentUpdate) {
		t.Errorf("IsRetryableError(ErrConcurrentUpdate) = false, want true")
	}

	if !IsRetryableError(NewStoreError("apply award", "bob", errors.New("connection reset"))) {
		t.Errorf("IsRetryableError(store error) = false, want true")
	}

	if IsRetryableError(ErrUserBlocked) {
		t.Errorf("IsRetryableError(ErrUserBlocked) = true, want false")
	}
}

func TestIsNotFoundError(t *testing.T) {
	if !IsNotFoundError(fmt.Errorf("lookup: %w", ErrTradeNotFound)) {
		t.Errorf("IsNotFoundError(wrapped trade not found) = false, want true")
	}
	if IsNotFoundError(ErrStoreUnavailable) {
		t.Errorf("IsNotFoundError(ErrStoreUnavailable) = true, want false")
	}
}

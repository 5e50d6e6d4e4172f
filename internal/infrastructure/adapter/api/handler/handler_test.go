package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/reputation"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/time"
	ucmocks "github.com/amirhossein-jamali/trade-ledger/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubHealth struct {
	err error
}

func (s stubHealth) Health(context.Context) (database.PoolMetrics, error) {
	return database.PoolMetrics{OpenConnections: 1, MaxOpenConnections: 1}, s.err
}

type testServer struct {
	router  *gin.Engine
	ledger  *ucmocks.MockLedgerUseCase
	flow    *ucmocks.MockReputationUpdateFlow
	reports *ucmocks.MockReportUseCase
}

func newTestServer(t *testing.T, health handler.HealthChecker) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	s := &testServer{
		router:  gin.New(),
		ledger:  ucmocks.NewMockLedgerUseCase(t),
		flow:    ucmocks.NewMockReputationUpdateFlow(t),
		reports: ucmocks.NewMockReportUseCase(t),
	}

	routes.SetupMiddlewares(s.router, log, timeProvider.NewRealTimeProvider())
	routes.SetupRoutes(s.router, routes.Handlers{
		User:   handler.NewUserHandler(s.ledger, log),
		Trade:  handler.NewTradeHandler(s.flow, log),
		Report: handler.NewReportHandler(s.reports, log),
		Health: handler.NewHealthHandler(health, log),
	})
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

var stamp = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestUserRoutes(t *testing.T) {
	t.Run("profile", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.ledger.EXPECT().GetProfile(mock.Anything, "alice").Return(&usecase.UserProfile{
			UserID: "alice", ReputationPoints: 42, TotalTrades: 7,
		}, nil).Once()

		w := s.do(t, http.MethodGet, "/users/alice", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.ProfileResponse](t, w)
		assert.Equal(t, int64(42), resp.ReputationPoints)
		assert.Equal(t, int64(7), resp.TotalTrades)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("unknown user is 404", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.ledger.EXPECT().GetProfile(mock.Anything, "ghost").Return(nil, domainerr.ErrUserNotFound).Once()

		w := s.do(t, http.MethodGet, "/users/ghost", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, domainerr.CodeUserNotFound, resp.Code)
		assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), resp.RequestID)
	})

	t.Run("store outage hides detail", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.ledger.EXPECT().GetProfile(mock.Anything, "alice").
			Return(nil, domainerr.NewStoreError("get user", "alice", errors.New("dial tcp 10.0.0.1:5432"))).Once()

		w := s.do(t, http.MethodGet, "/users/alice", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, domainerr.CodeStoreUnavailable, resp.Code)
		assert.NotContains(t, resp.Message, "10.0.0.1")
	})

	t.Run("trade history", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		history := entity.NewTradeHistory("alice", []entity.Trade{
			{ID: "t2", UserID: "bob", PartnerID: "alice", Type: entity.TradeGive, Timestamp: stamp},
			{ID: "t1", UserID: "alice", PartnerID: "bob", Type: entity.TradeGive, Timestamp: stamp.Add(-time.Hour)},
		})
		s.ledger.EXPECT().GetTradeHistory(mock.Anything, "alice").Return(history, nil).Once()

		w := s.do(t, http.MethodGet, "/users/alice/trades", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.TradeHistoryResponse](t, w)
		require.Len(t, resp.Given, 1)
		require.Len(t, resp.Received, 1)
		assert.Equal(t, "t1", resp.Given[0].ID)
		assert.Equal(t, "t2", resp.Received[0].ID)
	})

	t.Run("pair count", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.ledger.EXPECT().GetPairStats(mock.Anything, "alice", "bob").Return(&usecase.PairStats{
			UserID: "alice", PartnerID: "bob", TradesWithPartner: 2, TotalTrades: 5,
		}, nil).Once()

		w := s.do(t, http.MethodGet, "/users/alice/partners/bob/count", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.PairCountResponse](t, w)
		assert.Equal(t, int64(2), resp.TradesWithPartner)
		assert.Equal(t, int64(5), resp.TotalTrades)
	})
}

func TestTradeRoutes(t *testing.T) {
	t.Run("record trade", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.flow.EXPECT().RecordTrade(mock.Anything, usecase.RecordTradeRequest{
			UserID: "alice", PartnerID: "bob", Type: "give", Item: "sword",
		}).Return(&entity.Trade{
			ID: "t1", UserID: "alice", PartnerID: "bob", Type: entity.TradeGive, Item: "sword", Timestamp: stamp,
		}, nil).Once()

		w := s.do(t, http.MethodPost, "/trades", dto.RecordTradeRequest{
			UserID: "alice", PartnerID: "bob", Type: "give", Item: "sword",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decode[dto.TradeResponse](t, w)
		assert.Equal(t, "t1", resp.ID)
		assert.Nil(t, resp.CompletedAt)
	})

	t.Run("missing fields are rejected before the use case", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})

		w := s.do(t, http.MethodPost, "/trades", map[string]string{"userId": "alice"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("blank item is 400", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.flow.EXPECT().RecordTrade(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("invalid trade: %w", domainerr.ErrInvalidItem)).Once()

		w := s.do(t, http.MethodPost, "/trades", dto.RecordTradeRequest{UserID: "alice", PartnerID: "bob", Type: "give", Item: " "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidItem, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("blocked user is 403", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.flow.EXPECT().RecordTrade(mock.Anything, mock.Anything).Return(nil, domainerr.ErrUserBlocked).Once()

		w := s.do(t, http.MethodPost, "/trades", dto.RecordTradeRequest{UserID: "mallory", PartnerID: "bob", Type: "give", Item: "rope"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, domainerr.CodeUserBlocked, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("record and score", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		rating := entity.Rating(5)
		s.flow.EXPECT().RecordAndScoreTrade(mock.Anything, usecase.ScoreTradeRequest{
			RecordTradeRequest: usecase.RecordTradeRequest{UserID: "alice", PartnerID: "bob", Type: "receive", Item: "map"},
			Rating:             5,
		}).Return(&usecase.ScoreResult{
			Trade:   &entity.Trade{ID: "t9", UserID: "alice", PartnerID: "bob", Type: entity.TradeReceive, Item: "map", Timestamp: stamp, CompletedAt: &stamp, Rating: &rating},
			Award:   10,
			Factors: reputation.Factors{SafeTotal: 1, SafePartner: 1, Award: 10},
			User:    &entity.User{ID: "alice", ReputationPoints: 10},
		}, nil).Once()

		w := s.do(t, http.MethodPost, "/trades/completed", dto.CompletedTradeRequest{
			RecordTradeRequest: dto.RecordTradeRequest{UserID: "alice", PartnerID: "bob", Type: "receive", Item: "map"},
			Rating:             5,
		})

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decode[dto.ScoreResponse](t, w)
		assert.Equal(t, 10, resp.Award)
		assert.Equal(t, int64(10), resp.ReputationPoints)
		require.NotNil(t, resp.Trade.Rating)
		assert.Equal(t, 5, *resp.Trade.Rating)
	})

	t.Run("rating an already completed trade is 409", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.flow.EXPECT().ScoreTrade(mock.Anything, "t1", float64(4)).Return(nil, domainerr.ErrTradeAlreadyCompleted).Once()

		w := s.do(t, http.MethodPost, "/trades/t1/rating", dto.RateTradeRequest{Rating: 4})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domainerr.CodeTradeAlreadyCompleted, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("invalid rating is 400", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.flow.EXPECT().ScoreTrade(mock.Anything, "t1", 3.5).Return(nil, domainerr.ErrInvalidRating).Once()

		w := s.do(t, http.MethodPost, "/trades/t1/rating", dto.RateTradeRequest{Rating: 3.5})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRating, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("history violation is 422", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.flow.EXPECT().ScoreTrade(mock.Anything, "t1", float64(5)).
			Return(nil, domainerr.NewInvalidTradeHistoryError(1, 2)).Once()

		w := s.do(t, http.MethodPost, "/trades/t1/rating", dto.RateTradeRequest{Rating: 5})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestReportRoutes(t *testing.T) {
	t.Run("file report", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.reports.EXPECT().FileReport(mock.Anything, usecase.FileReportRequest{
			TradeID: "t1", ReporterID: "alice", ReportedID: "bob", MessageID: "m-1",
		}).Return(&entity.Report{
			ID: "r1", TradeID: "t1", ReporterID: "alice", ReportedID: "bob", MessageID: "m-1", Timestamp: stamp,
		}, nil).Once()

		w := s.do(t, http.MethodPost, "/trades/t1/reports", dto.FileReportRequest{
			ReporterID: "alice", ReportedID: "bob", MessageID: "m-1",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "r1", decode[dto.ReportResponse](t, w).ID)
	})

	t.Run("list reports", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.reports.EXPECT().ListReports(mock.Anything, "t1").Return([]entity.Report{
			{ID: "r1", TradeID: "t1"}, {ID: "r2", TradeID: "t1"},
		}, nil).Once()

		w := s.do(t, http.MethodGet, "/trades/t1/reports", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[[]dto.ReportResponse](t, w)
		require.Len(t, resp, 2)
		assert.Equal(t, "r2", resp[1].ID)
	})

	t.Run("unknown trade is 404", func(t *testing.T) {
		s := newTestServer(t, stubHealth{})
		s.reports.EXPECT().FileReport(mock.Anything, mock.Anything).Return(nil, domainerr.ErrTradeNotFound).Once()

		w := s.do(t, http.MethodPost, "/trades/nope/reports", dto.FileReportRequest{ReporterID: "alice", ReportedID: "bob"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthRoute(t *testing.T) {
	w := newTestServer(t, stubHealth{}).do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = newTestServer(t, stubHealth{err: errors.New("ping timeout")}).do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

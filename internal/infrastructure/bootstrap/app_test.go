package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, redisAddr string) *config.Config {
	t.Helper()
	return &config.Config{
		Environment: config.Test,
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Path:         filepath.Join(t.TempDir(), "ledger.db"),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			QueryTimeout: 5 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "silent"},
		Cache: config.CacheConfig{
			Enabled:   redisAddr != "",
			Addr:      redisAddr,
			KeyPrefix: "profile:",
			TTL:       time.Minute,
		},
		Reputation: config.ReputationConfig{
			QueueBuffer:          8,
			MaxAwardRetries:      3,
			RetryInitialInterval: time.Millisecond,
			RetryMaxInterval:     5 * time.Millisecond,
			RetryMaxElapsedTime:  time.Second,
		},
	}
}

func newApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	ctx := context.Background()

	app, err := New(ctx, cfg, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.NoError(t, app.Migrate(ctx))
	return app
}

func TestScoringThroughCachedStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	app := newApp(t, testConfig(t, mr.Addr()))

	_, isRedis := app.Cache.(*cache.RedisProfileCache)
	require.True(t, isRedis)

	first, err := app.Reputation.RecordAndScoreTrade(ctx, usecase.ScoreTradeRequest{
		RecordTradeRequest: usecase.RecordTradeRequest{UserID: "alice", PartnerID: "bob", Type: "give", Item: "lamp"},
		Rating:             5,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, first.Award)

	profile, err := app.Ledger.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(10), profile.ReputationPoints)
	assert.True(t, mr.Exists("profile:alice"))

	open, err := app.Reputation.RecordTrade(ctx, usecase.RecordTradeRequest{UserID: "alice", PartnerID: "bob", Type: "receive", Item: "kettle"})
	require.NoError(t, err)
	second, err := app.Reputation.ScoreTrade(ctx, open.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Award)

	// The award invalidated the cached row
	profile, err = app.Ledger.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(15), profile.ReputationPoints)
	assert.Equal(t, int64(2), profile.TotalTrades)

	_, err = app.Reputation.ScoreTrade(ctx, open.ID, 4)
	assert.ErrorIs(t, err, errs.ErrTradeAlreadyCompleted)
}

func TestBlockedUserCannotTrade(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	app := newApp(t, testConfig(t, mr.Addr()))

	_, err := app.Ledger.SetBlocked(ctx, "mallory", true)
	require.NoError(t, err)

	_, err = app.Reputation.RecordTrade(ctx, usecase.RecordTradeRequest{UserID: "mallory", PartnerID: "bob", Type: "give", Item: "rope"})
	assert.ErrorIs(t, err, errs.ErrUserBlocked)

	_, err = app.Ledger.SetBlocked(ctx, "mallory", false)
	require.NoError(t, err)

	_, err = app.Reputation.RecordTrade(ctx, usecase.RecordTradeRequest{UserID: "mallory", PartnerID: "bob", Type: "give", Item: "rope"})
	assert.NoError(t, err)
}

func TestCacheFallsBackWhenDisabledOrUnreachable(t *testing.T) {
	app := newApp(t, testConfig(t, ""))
	assert.IsType(t, cache.NoopProfileCache{}, app.Cache)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	app = newApp(t, testConfig(t, addr))
	assert.IsType(t, cache.NoopProfileCache{}, app.Cache)
}

func TestReportsAgainstStoredTrade(t *testing.T) {
	ctx := context.Background()
	app := newApp(t, testConfig(t, ""))

	trade, err := app.Reputation.RecordTrade(ctx, usecase.RecordTradeRequest{UserID: "alice", PartnerID: "bob", Type: "give", Item: "chair"})
	require.NoError(t, err)

	report, err := app.Reporting.FileReport(ctx, usecase.FileReportRequest{
		TradeID: trade.ID, ReporterID: "bob", ReportedID: "alice", MessageID: "msg-1",
	})
	require.NoError(t, err)
	assert.Len(t, report.ID, 36)

	reports, err := app.Reporting.ListReports(ctx, trade.ID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "msg-1", reports[0].MessageID)
}

func TestReputationConfigDefaults(t *testing.T) {
	cfg := reputationConfig(config.ReputationConfig{})
	assert.Equal(t, 100, cfg.QueueBuffer)
	assert.Equal(t, uint64(5), cfg.MaxAwardRetries)
}

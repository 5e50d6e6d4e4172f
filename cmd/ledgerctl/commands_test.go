package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/reputation"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOpener(t *testing.T) appOpener {
	t.Helper()
	cfg := &config.Config{
		Environment: config.Test,
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Path:         filepath.Join(t.TempDir(), "ledger.db"),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			QueryTimeout: 5 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "silent"},
	}
	return func(ctx context.Context) (*bootstrap.App, error) {
		return bootstrap.New(ctx, cfg, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())
	}
}

func runCLI(t *testing.T, open appOpener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(open, logger.NewNoopLogger())
	cmd.Writer = &out
	cmd.ErrWriter = &out
	err := cmd.Run(context.Background(), append([]string{"ledgerctl"}, args...))
	return out.String(), err
}

func TestAwardCommand(t *testing.T) {
	unused := func(context.Context) (*bootstrap.App, error) {
		t.Fatal("award must not open the database")
		return nil, nil
	}

	out, err := runCLI(t, unused, "award", "--rating", "5", "--total", "10", "--partner", "1")
	require.NoError(t, err)

	var factors reputation.Factors
	require.NoError(t, json.Unmarshal([]byte(out), &factors))
	assert.Equal(t, 10, factors.Award)
	assert.InDelta(t, 0.1, factors.ConcentrationRatio, 1e-9)

	_, err = runCLI(t, unused, "award", "--rating", "5", "--total", "1", "--partner", "3")
	assert.Error(t, err)
}

func TestLedgerCommands(t *testing.T) {
	open := testOpener(t)

	out, err := runCLI(t, open, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema at version")

	out, err = runCLI(t, open, "record", "--user", "alice", "--partner", "bob", "--rating", "4", "--item", "lamp")
	require.NoError(t, err)
	var scored dto.ScoreResponse
	require.NoError(t, json.Unmarshal([]byte(out), &scored))
	assert.Equal(t, 8, scored.Award)

	out, err = runCLI(t, open, "user", "alice")
	require.NoError(t, err)
	var profile dto.ProfileResponse
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Equal(t, int64(8), profile.ReputationPoints)

	out, err = runCLI(t, open, "trades", "bob")
	require.NoError(t, err)
	var history dto.TradeHistoryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &history))
	assert.Len(t, history.Received, 1)
	assert.Empty(t, history.Given)

	out, err = runCLI(t, open, "block", "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob blocked=true\n", out)

	out, err = runCLI(t, open, "unblock", "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob blocked=false\n", out)

	_, err = runCLI(t, open, "user")
	assert.ErrorIs(t, err, ErrUserIDRequired)
}

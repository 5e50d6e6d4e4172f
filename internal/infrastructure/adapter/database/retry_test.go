package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		MaxElapsedTime:  time.Second,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoopLogger()

	t.Run("retries transient failures", func(t *testing.T) {
		calls := 0
		result, err := RetryOnTransientError(ctx, fastRetryConfig(), log, func(context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, errors.New("read tcp: connection reset by peer")
			}
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, result)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent failures", func(t *testing.T) {
		calls := 0
		permanent := errors.New("syntax error at or near SELEC")
		_, err := RetryOnTransientError(ctx, fastRetryConfig(), log, func(context.Context) (int, error) {
			calls++
			return 0, permanent
		})

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		calls := 0
		_, err := RetryOnTransientError(ctx, fastRetryConfig(), log, func(context.Context) (int, error) {
			calls++
			return 0, errors.New("database is locked (5) (SQLITE_BUSY)")
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 4 attempts")
		assert.Equal(t, 4, calls)
	})
}

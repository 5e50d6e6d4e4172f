package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/repository"
	"github.com/cenkalti/backoff/v4"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      5,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		MaxElapsedTime:  30 * time.Second,
	}
}

// RetryOnTransientError runs operation until it succeeds, fails with an error
// that is not transient, or the retry budget runs out
func RetryOnTransientError[T any](
	ctx context.Context,
	config RetryConfig,
	logger coreport.Logger,
	operation func(context.Context) (T, error),
) (T, error) {
	classifier := repository.NewErrorClassifier()

	var result T
	permanent := false
	attempt := 0

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(config.InitialInterval),
		backoff.WithMaxInterval(config.MaxInterval),
		backoff.WithMaxElapsedTime(config.MaxElapsedTime),
	), config.MaxRetries)

	err := backoff.RetryNotify(func() error {
		attempt++
		var err error
		result, err = operation(ctx)
		if err == nil {
			return nil
		}
		if !classifier.IsRetryable(err) {
			permanent = true
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(policy, ctx), func(err error, wait time.Duration) {
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"retry_after": wait.String(),
		})
	})
	if err != nil {
		if !permanent {
			logger.Error("All retry attempts failed", map[string]any{
				"attempts": attempt,
				"error":    err.Error(),
			})
			return result, fmt.Errorf("database operation failed after %d attempts: %w", attempt, err)
		}
		return result, err
	}

	return result, nil
}

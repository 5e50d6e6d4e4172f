package reputation

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/cenkalti/backoff/v4"
)

// completeWithRetry retries lost compare-and-set races and transient store
// failures. Everything else stops the loop at once.
func (s *Service) completeWithRetry(ctx context.Context, trade *entity.Trade, award int) (*entity.User, error) {
	var user *entity.User
	attempt := 0

	operation := func() error {
		attempt++
		u, err := s.completeAndAward(ctx, trade, award)
		if err != nil {
			if !errs.IsRetryableError(err) {
				return backoff.Permanent(err)
			}
			s.logger.Warn("Award attempt failed, retrying", map[string]any{
				"trade_id": trade.ID,
				"user_id":  trade.UserID,
				"attempt":  attempt,
				"error":    err.Error(),
			})
			return err
		}
		user = u
		return nil
	}

	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(s.config.RetryInitialInterval),
		backoff.WithMaxInterval(s.config.RetryMaxInterval),
		backoff.WithMaxElapsedTime(s.config.RetryMaxElapsedTime),
	), s.config.MaxAwardRetries)

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		s.logger.Error("Failed to apply award", map[string]any{
			"trade_id": trade.ID,
			"user_id":  trade.UserID,
			"award":    award,
			"attempts": attempt,
			"error":    err.Error(),
		})
		return nil, err
	}

	return user, nil
}

package reputation

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
	scoring "github.com/amirhossein-jamali/trade-ledger/internal/domain/reputation"
	"github.com/sourcegraph/conc/pool"
)

// ScoreTrade completes an open trade with a rating and awards its user
func (s *Service) ScoreTrade(ctx context.Context, tradeID string, rating float64) (*usecase.ScoreResult, error) {
	if err := s.validator.ValidateTradeID(tradeID); err != nil {
		return nil, err
	}

	parsedRating, err := s.validator.ValidateRating(rating)
	if err != nil {
		return nil, err
	}

	trade, err := s.trades.GetByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}

	if trade.IsCompleted() {
		return nil, errs.NewTradeError(trade.ID, trade.UserID, trade.PartnerID, "trade already rated", errs.ErrTradeAlreadyCompleted)
	}

	blocked, err := s.store.IsBlocked(ctx, trade.UserID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, errs.NewTradeError(trade.ID, trade.UserID, trade.PartnerID, "user is blocked", errs.ErrUserBlocked)
	}

	return s.queue.Enqueue(ctx, trade.UserID, func(ctx context.Context) (*usecase.ScoreResult, error) {
		return s.scoreOpenTrade(ctx, trade, parsedRating)
	})
}

// scoreOpenTrade runs on the user's queue. The trade is already stored, so
// both counts include it.
func (s *Service) scoreOpenTrade(ctx context.Context, trade *entity.Trade, rating entity.Rating) (*usecase.ScoreResult, error) {
	total, withPartner, err := s.fetchCounts(ctx, trade.UserID, trade.PartnerID)
	if err != nil {
		return nil, err
	}

	factors, err := s.calculator.Breakdown(scoring.AwardInput{
		Rating:            rating.Float(),
		TotalTradesUser:   float64(total),
		TradesWithPartner: float64(withPartner),
	})
	if err != nil {
		fields := map[string]any{"trade_id": trade.ID}
		var historyErr *errs.InvalidTradeHistoryError
		if errors.As(err, &historyErr) {
			for k, v := range historyErr.LogFields() {
				fields[k] = v
			}
		}
		s.logger.Error("Trade history is inconsistent, not scoring", fields)
		return nil, err
	}

	completed := trade.Clone()
	if err := completed.Complete(rating, s.timeProvider); err != nil {
		return nil, err
	}

	user, err := s.completeWithRetry(ctx, completed, factors.Award)
	if err != nil {
		return nil, err
	}

	s.refreshProfile(ctx, user)

	s.logger.Info("Trade scored", map[string]any{
		"trade_id":          completed.ID,
		"user_id":           user.ID,
		"partner_id":        completed.PartnerID,
		"rating":            int(rating),
		"award":             factors.Award,
		"total_trades":      total,
		"trades_with_pair":  withPartner,
		"reputation_points": user.ReputationPoints,
	})

	return &usecase.ScoreResult{
		Trade:   completed,
		Award:   factors.Award,
		Factors: factors,
		User:    user,
	}, nil
}

// fetchCounts loads the user's total and pair counts in parallel
func (s *Service) fetchCounts(ctx context.Context, userID, partnerID string) (int64, int64, error) {
	var total, withPartner int64

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		n, err := s.store.CountTotalTrades(ctx, userID)
		total = n
		return err
	})
	p.Go(func(ctx context.Context) error {
		n, err := s.store.CountTradesWithPartner(ctx, userID, partnerID)
		withPartner = n
		return err
	})

	if err := p.Wait(); err != nil {
		return 0, 0, fmt.Errorf("failed to count trades: %w", err)
	}
	return total, withPartner, nil
}

// completeAndAward marks the trade completed and applies the award in one
// unit of work, so a trade is never closed without its points
func (s *Service) completeAndAward(ctx context.Context, trade *entity.Trade, award int) (user *entity.User, err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back award", map[string]any{
					"trade_id": trade.ID,
					"error":    rbErr.Error(),
				})
			}
		}
	}()

	if _, err = s.uow.GetTradeRepository(txCtx).MarkCompleted(txCtx, trade.ID, *trade.CompletedAt, *trade.Rating); err != nil {
		return nil, err
	}

	user, err = s.uow.GetReputationWriter(txCtx).ApplyAward(txCtx, trade.UserID, award)
	if err != nil {
		return nil, err
	}

	if err = s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	return user, nil
}

// refreshProfile writes the committed row to the cache so a reader holding an
// older copy cannot put it back. If that fails the entry is dropped instead.
func (s *Service) refreshProfile(ctx context.Context, user *entity.User) {
	setErr := s.cache.Set(ctx, user)
	if setErr == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, user.ID); err != nil {
		s.logger.Warn("Failed to refresh cached profile", map[string]any{
			"user_id":          user.ID,
			"set_error":        setErr.Error(),
			"invalidate_error": err.Error(),
		})
	}
}

package reputation

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
)

// RecordTrade stores an open trade and makes sure both participants exist
func (s *Service) RecordTrade(ctx context.Context, req usecase.RecordTradeRequest) (*entity.Trade, error) {
	req, err := s.validator.ValidateRecord(req)
	if err != nil {
		return nil, fmt.Errorf("invalid trade: %w", err)
	}

	blocked, err := s.store.IsBlocked(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if blocked {
		s.logger.Warn("Blocked user tried to start a trade", map[string]any{
			"user_id":    req.UserID,
			"partner_id": req.PartnerID,
		})
		return nil, errs.NewTradeError("", req.UserID, req.PartnerID, "user is blocked", errs.ErrUserBlocked)
	}

	trade, err := entity.NewTrade(s.ids.NewID(), req.UserID, req.PartnerID, req.Type, req.Item, s.timeProvider)
	if err != nil {
		return nil, fmt.Errorf("invalid trade: %w", err)
	}

	if err := s.persistTrade(ctx, trade); err != nil {
		return nil, err
	}

	s.logger.Info("Trade recorded", map[string]any{
		"trade_id":   trade.ID,
		"user_id":    trade.UserID,
		"partner_id": trade.PartnerID,
		"type":       string(trade.Type),
	})

	return trade, nil
}

// RecordAndScoreTrade records a trade and immediately scores it with the rating
func (s *Service) RecordAndScoreTrade(ctx context.Context, req usecase.ScoreTradeRequest) (*usecase.ScoreResult, error) {
	// Reject a bad rating before anything is written
	rating, err := s.validator.ValidateRating(req.Rating)
	if err != nil {
		return nil, err
	}

	trade, err := s.RecordTrade(ctx, req.RecordTradeRequest)
	if err != nil {
		return nil, err
	}

	return s.queue.Enqueue(ctx, trade.UserID, func(ctx context.Context) (*usecase.ScoreResult, error) {
		return s.scoreOpenTrade(ctx, trade, rating)
	})
}

// persistTrade creates the participants and the trade in one unit of work
func (s *Service) persistTrade(ctx context.Context, trade *entity.Trade) (err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back trade recording", map[string]any{
					"trade_id": trade.ID,
					"error":    rbErr.Error(),
				})
			}
		}
	}()

	writer := s.uow.GetReputationWriter(txCtx)
	for _, userID := range []string{trade.UserID, trade.PartnerID} {
		if _, err = writer.EnsureUser(txCtx, userID); err != nil {
			return err
		}
	}

	if err = s.uow.GetTradeRepository(txCtx).Create(txCtx, trade); err != nil {
		return err
	}

	return s.uow.Commit(txCtx)
}

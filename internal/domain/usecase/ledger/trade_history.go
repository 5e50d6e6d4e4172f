package ledger

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
	"github.com/sourcegraph/conc/pool"
)

// GetTradeHistory returns every trade of the user split by role
func (u *LedgerUseCase) GetTradeHistory(ctx context.Context, userID string) (*entity.TradeHistory, error) {
	userID, err := entity.NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}
	return u.store.GetUserTrades(ctx, userID)
}

// GetPairStats returns the counts the scorer would use for this pair
func (u *LedgerUseCase) GetPairStats(ctx context.Context, userID, partnerID string) (*usecase.PairStats, error) {
	userID, err := entity.NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}
	partnerID, err = entity.NormalizeUserID(partnerID)
	if err != nil {
		return nil, err
	}
	if userID == partnerID {
		return nil, errs.ErrSelfTrade
	}

	stats := &usecase.PairStats{UserID: userID, PartnerID: partnerID}

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		stats.TradesWithPartner, err = u.store.CountTradesWithPartner(ctx, userID, partnerID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		stats.TotalTrades, err = u.store.CountTotalTrades(ctx, userID)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

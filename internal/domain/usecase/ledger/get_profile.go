package ledger

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
	"github.com/sourcegraph/conc/pool"
)

// GetProfile returns a user's reputation summary
func (u *LedgerUseCase) GetProfile(ctx context.Context, userID string) (*usecase.UserProfile, error) {
	userID, err := entity.NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}

	var (
		user  *entity.User
		found bool
		total int64
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		user, found, err = u.store.GetUser(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		total, err = u.store.CountTotalTrades(ctx, userID)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	// No row is a normal outcome for the store; the API reports it as not found
	if !found {
		return nil, errs.ErrUserNotFound
	}

	u.logger.Debug("User profile retrieved", map[string]any{
		"user_id":           user.ID,
		"reputation_points": user.ReputationPoints,
	})

	return &usecase.UserProfile{
		UserID:           user.ID,
		ReputationPoints: user.ReputationPoints,
		Blocked:          user.Blocked,
		TotalTrades:      total,
	}, nil
}

package ledger

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
)

// SetBlocked toggles whether the user may start trades
func (u *LedgerUseCase) SetBlocked(ctx context.Context, userID string, blocked bool) (*entity.User, error) {
	userID, err := entity.NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := u.writer.SetBlocked(ctx, userID, blocked)
	if err != nil {
		return nil, err
	}

	// Write the committed row so a concurrent reader's older copy loses
	if setErr := u.cache.Set(ctx, user); setErr != nil {
		if err := u.cache.Invalidate(ctx, userID); err != nil {
			u.logger.Warn("Failed to refresh cached profile", map[string]any{
				"user_id":          userID,
				"set_error":        setErr.Error(),
				"invalidate_error": err.Error(),
			})
		}
	}

	u.logger.Info("User moderation flag changed", map[string]any{
		"user_id": userID,
		"blocked": blocked,
	})

	return user, nil
}

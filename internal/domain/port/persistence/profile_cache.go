package persistence

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
)

// ProfileCache keeps recently read user rows close to the API.
// A miss is reported as (nil, false, nil).
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*entity.User, bool, error)
	Set(ctx context.Context, user *entity.User) error
	Invalidate(ctx context.Context, userID string) error
}

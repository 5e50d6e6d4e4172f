package persistence

import (
	"context"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
)

// ReputationWriter mutates user rows
type ReputationWriter interface {
	// EnsureUser creates a zero-reputation row if none exists
	//
	// Possible errors:
	// - ErrInvalidUserID: If the ID is empty
	// - ErrStoreUnavailable: If the database fails
	EnsureUser(ctx context.Context, userID string) (*entity.User, error)

	// ApplyAward adds award to the stored reputation, clamped at zero.
	// The read-modify-write is serialized per user; the update only lands if
	// the stored value is still the one that was read.
	//
	// Possible errors:
	// - ErrConcurrentUpdate: If another writer changed the row first
	// - ErrStoreUnavailable: If the database fails
	ApplyAward(ctx context.Context, userID string, award int) (*entity.User, error)

	// SetBlocked toggles the moderation flag, creating the row if needed
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the database fails
	SetBlocked(ctx context.Context, userID string, blocked bool) (*entity.User, error)
}

package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
)

// User represents a trader and their accumulated reputation
type User struct {
	ID               string    // Opaque unique identifier
	ReputationPoints int64     // Never negative
	Blocked          bool      // Barred from starting new trades
	CreatedAt        time.Time // First interaction with the ledger
	UpdatedAt        time.Time // Last reputation or moderation change
}

// NewUser creates a user with zero reputation, as on first interaction
func NewUser(id string, timeProvider coreport.TimeProvider) (*User, error) {
	id, err := NormalizeUserID(id)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NormalizeUserID trims an identifier and rejects empty values
func NormalizeUserID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errs.ErrInvalidUserID
	}
	return id, nil
}

// ApplyAward adds an award to the reputation, clamping the total at zero
func (u *User) ApplyAward(award int, timeProvider coreport.TimeProvider) {
	u.ReputationPoints = ClampReputation(u.ReputationPoints + int64(award))
	u.UpdatedAt = timeProvider.Now()
}

// SetBlocked toggles the moderation flag
func (u *User) SetBlocked(blocked bool, timeProvider coreport.TimeProvider) {
	u.Blocked = blocked
	u.UpdatedAt = timeProvider.Now()
}

// CanTrade reports whether the user may start a new trade
func (u *User) CanTrade() bool {
	return !u.Blocked
}

// Clone returns a copy of the user
func (u *User) Clone() *User {
	clone := *u
	return &clone
}

// ClampReputation enforces the non-negative reputation invariant
func ClampReputation(points int64) int64 {
	if points < 0 {
		return 0
	}
	return points
}

package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating writes across multiple
// repositories so a trade and its participants are stored atomically
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetReputationWriter returns a user writer bound to the current transaction
	GetReputationWriter(ctx context.Context) ReputationWriter

	// GetTradeRepository returns a trade repository bound to the current transaction
	GetTradeRepository(ctx context.Context) TradeRepository
}

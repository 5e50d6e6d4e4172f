package database

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrade(id string) *entity.Trade {
	return &entity.Trade{
		ID:        id,
		UserID:    "alice",
		PartnerID: "bob",
		Type:      entity.TradeGive,
		Item:      "lamp",
	}
}

func TestUnitOfWork_Commit(t *testing.T) {
	testDB := NewTestDBManager(t)
	uow := testDB.Manager.CreateUnitOfWork()
	ctx := context.Background()

	trade := newTrade("t1")
	trade.Timestamp = testDB.TimeProvider.Now()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	_, err = uow.GetReputationWriter(txCtx).EnsureUser(txCtx, "alice")
	require.NoError(t, err)
	require.NoError(t, uow.GetTradeRepository(txCtx).Create(txCtx, trade))
	require.NoError(t, uow.Commit(txCtx))

	store := repository.NewLedgerStore(testDB.Manager.DB(), testDB.Logger)
	_, found, err := store.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, found)

	count, err := store.CountTotalTrades(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Rolling back a committed transaction is tolerated
	assert.NoError(t, uow.Rollback(txCtx))
}

func TestUnitOfWork_Rollback(t *testing.T) {
	testDB := NewTestDBManager(t)
	uow := testDB.Manager.CreateUnitOfWork()
	ctx := context.Background()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	_, err = uow.GetReputationWriter(txCtx).ApplyAward(txCtx, "alice", 10)
	require.NoError(t, err)

	trade := newTrade("t1")
	trade.Timestamp = testDB.TimeProvider.Now()
	require.NoError(t, uow.GetTradeRepository(txCtx).Create(txCtx, trade))
	_, err = uow.GetTradeRepository(txCtx).MarkCompleted(txCtx, "t1", trade.Timestamp, entity.Rating(5))
	require.NoError(t, err)

	require.NoError(t, uow.Rollback(txCtx))

	store := repository.NewLedgerStore(testDB.Manager.DB(), testDB.Logger)
	_, found, err := store.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = repository.NewTradeRepository(testDB.Manager.DB(), testDB.Logger).GetByID(ctx, "t1")
	assert.Error(t, err)
}

func TestUnitOfWork_NoTransaction(t *testing.T) {
	testDB := NewTestDBManager(t)
	uow := testDB.Manager.CreateUnitOfWork()
	ctx := context.Background()

	assert.True(t, errors.Is(uow.Commit(ctx), ErrNoTransaction))
	assert.True(t, errors.Is(uow.Rollback(ctx), ErrNoTransaction))

	// Outside a transaction the repositories use the pool directly
	user, err := uow.GetReputationWriter(ctx).EnsureUser(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, "carol", user.ID)
}

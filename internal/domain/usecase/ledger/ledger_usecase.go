package ledger

import (
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
)

// LedgerUseCase handles profile, history and moderation queries
type LedgerUseCase struct {
	store  persistence.TradeLedgerStore
	writer persistence.ReputationWriter
	cache  persistence.ProfileCache
	logger coreport.Logger
}

var _ usecase.LedgerUseCase = (*LedgerUseCase)(nil)

// NewLedgerUseCase creates a new LedgerUseCase
func NewLedgerUseCase(
	store persistence.TradeLedgerStore,
	writer persistence.ReputationWriter,
	cache persistence.ProfileCache,
	logger coreport.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		store:  store,
		writer: writer,
		cache:  cache,
		logger: logger,
	}
}

package reputation

import (
	"time"

	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
	scoring "github.com/amirhossein-jamali/trade-ledger/internal/domain/reputation"
)

// Config tunes queueing and award retries
type Config struct {
	QueueBuffer          int
	MaxAwardRetries      uint64
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMaxElapsedTime  time.Duration
}

// DefaultConfig returns the settings used when none are configured
func DefaultConfig() Config {
	return Config{
		QueueBuffer:          100,
		MaxAwardRetries:      5,
		RetryInitialInterval: 50 * time.Millisecond,
		RetryMaxInterval:     time.Second,
		RetryMaxElapsedTime:  10 * time.Second,
	}
}

// Dependencies groups the ports the service is built from
type Dependencies struct {
	UnitOfWork   persistence.UnitOfWork
	Trades       persistence.TradeRepository
	Store        persistence.TradeLedgerStore
	Cache        persistence.ProfileCache
	Calculator   scoring.AwardCalculator
	IDGenerator  coreport.IDGenerator
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
}

// Service implements usecase.ReputationUpdateFlow
type Service struct {
	uow          persistence.UnitOfWork
	trades       persistence.TradeRepository
	store        persistence.TradeLedgerStore
	cache        persistence.ProfileCache
	calculator   scoring.AwardCalculator
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *TradeValidator
	queue        *UserQueue
	config       Config
}

var _ usecase.ReputationUpdateFlow = (*Service)(nil)

// NewService creates the reputation update flow
func NewService(deps Dependencies, config Config) *Service {
	if deps.Calculator == nil {
		deps.Calculator = scoring.NewScorer()
	}

	return &Service{
		uow:          deps.UnitOfWork,
		trades:       deps.Trades,
		store:        deps.Store,
		cache:        deps.Cache,
		calculator:   deps.Calculator,
		ids:          deps.IDGenerator,
		timeProvider: deps.TimeProvider,
		logger:       deps.Logger,
		validator:    NewTradeValidator(),
		queue:        NewUserQueue(deps.Logger, config.QueueBuffer),
		config:       config,
	}
}

// Shutdown drains the per-user queues
func (s *Service) Shutdown() {
	s.queue.Shutdown()
}

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/usecase/report"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/usecase/reputation"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/id"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const cachePingTimeout = 2 * time.Second

// App holds the wired adapters and use cases shared by the HTTP server and the CLI
type App struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	Database     *database.Manager

	Store   persistence.TradeLedgerStore
	Users   persistence.ReputationWriter
	Trades  persistence.TradeRepository
	Reports persistence.ReportRepository
	Cache   persistence.ProfileCache

	Ledger     *ledger.LedgerUseCase
	Reputation *reputation.Service
	Reporting  *report.Service

	redis *redis.Client
}

// New connects to the database and the optional profile cache and builds the use cases.
// Migrations are not run; call Migrate.
func New(ctx context.Context, cfg *config.Config, logger coreport.Logger, tp coreport.TimeProvider) (*App, error) {
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), logger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	app := &App{
		Config:       cfg,
		Logger:       logger,
		TimeProvider: tp,
		Database:     dbManager,
	}

	db := dbManager.DB()
	app.Users = repository.NewUserRepository(db, tp, logger)
	app.Trades = repository.NewTradeRepository(db, logger)
	app.Reports = repository.NewReportRepository(db, logger)
	app.Cache = app.connectCache(ctx)
	app.Store = cache.NewCachedLedgerStore(repository.NewLedgerStore(db, logger), app.Cache, logger)

	ids := id.NewUUIDGenerator()
	app.Ledger = ledger.NewLedgerUseCase(app.Store, app.Users, app.Cache, logger)
	app.Reporting = report.NewService(app.Reports, app.Trades, ids, tp, logger)
	app.Reputation = reputation.NewService(reputation.Dependencies{
		UnitOfWork:   dbManager.CreateUnitOfWork(),
		Trades:       app.Trades,
		Store:        app.Store,
		Cache:        app.Cache,
		IDGenerator:  ids,
		TimeProvider: tp,
		Logger:       logger,
	}, reputationConfig(cfg.Reputation))

	return app, nil
}

// connectCache returns the redis cache, or the noop cache when caching is
// disabled or redis cannot be reached at startup
func (a *App) connectCache(ctx context.Context) persistence.ProfileCache {
	cfg := a.Config.Cache
	if !cfg.Enabled {
		return cache.NoopProfileCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := a.TimeProvider.WithTimeout(ctx, cachePingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		a.Logger.Warn("Profile cache unreachable, continuing without it", map[string]any{
			"addr":  cfg.Addr,
			"error": err.Error(),
		})
		_ = client.Close()
		return cache.NoopProfileCache{}
	}

	a.redis = client
	a.Logger.Info("Profile cache connected", map[string]any{
		"addr":   cfg.Addr,
		"ttl_ms": cfg.TTL.Milliseconds(),
	})
	return cache.NewRedisProfileCache(client, cfg.KeyPrefix, cfg.TTL, a.Logger)
}

// Migrate brings the schema to the current version
func (a *App) Migrate(ctx context.Context) error {
	return a.Database.MigrationManager().MigrateAll(ctx)
}

// Close drains the scoring queues and releases connections
func (a *App) Close() error {
	var errs []error

	if a.Reputation != nil {
		a.Reputation.Shutdown()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if err := a.Database.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}

	return errors.Join(errs...)
}

func reputationConfig(cfg config.ReputationConfig) reputation.Config {
	out := reputation.DefaultConfig()
	if cfg.QueueBuffer > 0 {
		out.QueueBuffer = cfg.QueueBuffer
	}
	if cfg.MaxAwardRetries > 0 {
		out.MaxAwardRetries = uint64(cfg.MaxAwardRetries)
	}
	if cfg.RetryInitialInterval > 0 {
		out.RetryInitialInterval = cfg.RetryInitialInterval
	}
	if cfg.RetryMaxInterval > 0 {
		out.RetryMaxInterval = cfg.RetryMaxInterval
	}
	if cfg.RetryMaxElapsedTime > 0 {
		out.RetryMaxElapsedTime = cfg.RetryMaxElapsedTime
	}
	return out
}

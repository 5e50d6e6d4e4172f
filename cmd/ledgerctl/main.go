package main

import (
	"context"
	"fmt"
	"log"
	"os"

	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/config"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger, cfg.Environment == config.Production)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	open := func(ctx context.Context) (*bootstrap.App, error) {
		return bootstrap.New(ctx, cfg, appLogger, tp)
	}

	return newRootCommand(open, appLogger).Run(context.Background(), os.Args)
}

// appOpener connects the application lazily so commands that need no
// storage never touch the database
type appOpener func(ctx context.Context) (*bootstrap.App, error)

func withApp(ctx context.Context, open appOpener, logger coreport.Logger, fn func(*bootstrap.App) error) error {
	app, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("Failed to close application", map[string]any{"error": err.Error()})
		}
	}()
	return fn(app)
}

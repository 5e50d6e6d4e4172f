package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger, cfg.Environment == config.Production)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	app, err := bootstrap.New(ctx, cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to start application", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	if err := app.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		_ = app.Close()
		os.Exit(1)
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, routes.Handlers{
		User:   handler.NewUserHandler(app.Ledger, appLogger),
		Trade:  handler.NewTradeHandler(app.Reputation, appLogger),
		Report: handler.NewReportHandler(app.Reporting, appLogger),
		Health: handler.NewHealthHandler(app.Database, appLogger),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
			"cache":  cfg.Cache.Enabled,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case <-quit:
		appLogger.Info("Shutting down server...", nil)
	case err := <-serverErr:
		appLogger.Error("Server failed", map[string]any{"error": err.Error()})
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests before the scoring queues are drained
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	if err := app.Close(); err != nil {
		appLogger.Error("Failed to release resources", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited", map[string]any{"exit_code": exitCode})
	if exitCode != 0 {
		_ = appLogger.Flush()
		os.Exit(exitCode)
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if cfg.Database.QueryTimeout == 0 {
		missing = append(missing, "database.queryTimeout")
	}
	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}
	if cfg.Cache.Enabled && cfg.Cache.Addr == "" {
		missing = append(missing, "cache.addr")
	}

	switch cfg.Environment {
	case config.Development, config.Production, config.Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	// Driver specific checks live with the database adapter
	if err := database.CreateConfigFromViperConfig(cfg).Validate(); err != nil {
		return err
	}

	if cfg.Environment == config.Production {
		var warnings []string
		if cfg.Database.Driver == database.DriverPostgres {
			switch cfg.Database.SSLMode {
			case "require", "verify-ca", "verify-full":
			default:
				warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca', or 'verify-full' in production")
			}
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}

package database

import (
	"context"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/time"
)

// TestDBManager wraps a Manager connected to a private in-memory SQLite database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// TestConfig returns the configuration used by NewTestDBManager
func TestConfig() *Config {
	return &Config{
		Driver:        DriverSQLite,
		Path:          ":memory:",
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 0,
	}
}

// NewTestDBManager connects and migrates a fresh database that is closed when the test ends
func NewTestDBManager(t testing.TB) *TestDBManager {
	t.Helper()

	log := logger.NewNoopLogger()
	timeProvider := timeprovider.NewRealTimeProvider()
	config := TestConfig()

	manager := NewManager(config, log, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       log,
		TimeProvider: timeProvider,
	}
}

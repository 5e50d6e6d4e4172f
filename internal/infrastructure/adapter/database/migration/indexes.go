package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager creates the query indexes that the model tags cannot express
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// Statements valid on both PostgreSQL and SQLite
var indexStatements = []struct {
	name string
	sql  string
}{
	// Both directions of the symmetric pair count
	{"idx_trades_user_partner", "CREATE INDEX IF NOT EXISTS idx_trades_user_partner ON trades (user_id, partner_id)"},
	{"idx_trades_partner_user", "CREATE INDEX IF NOT EXISTS idx_trades_partner_user ON trades (partner_id, user_id)"},
	{"idx_trades_open", "CREATE INDEX IF NOT EXISTS idx_trades_open ON trades (user_id) WHERE completed_at IS NULL"},
	{"idx_reports_trade_timestamp", "CREATE INDEX IF NOT EXISTS idx_reports_trade_timestamp ON reports (trade_id, timestamp)"},
}

// CreateIndexes creates the composite and partial indexes
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating database indexes", nil)

	db := m.db.WithContext(ctx)
	for _, stmt := range indexStatements {
		if err := db.Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	return nil
}

// ApplyPerformanceTweaks tunes PostgreSQL storage for the hot users table.
// Failures are logged and ignored.
func (m *IndexManager) ApplyPerformanceTweaks(ctx context.Context) {
	if m.db.Dialector.Name() != "postgres" {
		return
	}

	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)
	tweaks := []string{
		// reputation_points is rewritten on every award
		"ALTER TABLE users SET (fillfactor = 85)",
		"ALTER TABLE trades ALTER COLUMN user_id SET STATISTICS 1000",
		"ALTER TABLE trades ALTER COLUMN partner_id SET STATISTICS 1000",
	}
	for _, sql := range tweaks {
		if err := db.Exec(sql).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"sql":   sql,
				"error": err.Error(),
			})
		}
	}
}

package logger

import (
	"sync/atomic"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
)

// NoopLogger drops every entry. It still tracks the level so code that
// toggles verbosity behaves the same under tests.
type NoopLogger struct {
	level atomic.Value
}

// NewNoopLogger creates a logger that writes nothing
func NewNoopLogger() core.Logger {
	l := &NoopLogger{}
	l.level.Store(core.LogLevelInfo)
	return l
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level.Store(level) }

func (l *NoopLogger) GetLevel() core.LogLevel { return l.level.Load().(core.LogLevel) }

func (l *NoopLogger) Debug(string, map[string]any) {}

func (l *NoopLogger) Info(string, map[string]any) {}

func (l *NoopLogger) Warn(string, map[string]any) {}

func (l *NoopLogger) Error(string, map[string]any) {}

func (l *NoopLogger) Flush() error { return nil }

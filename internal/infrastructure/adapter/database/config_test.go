package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPostgresConfig() *Config {
	return &Config{
		Driver:       DriverPostgres,
		Host:         "localhost",
		Port:         5432,
		Username:     "ledger",
		Password:     "secret",
		Database:     "trade_ledger",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		QueryTimeout: time.Second,
		LogLevel:     "info",
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid postgres", func(c *Config) {}, ""},
		{"valid sqlite without credentials", func(c *Config) {
			*c = *TestConfig()
		}, ""},
		{"sqlite needs a path", func(c *Config) {
			*c = *TestConfig()
			c.Path = ""
		}, "sqlite database path is required"},
		{"unknown driver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver"},
		{"missing host", func(c *Config) { c.Host = "" }, "database host is required"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port number"},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"zero timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout must be positive"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validPostgresConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=ledger password=secret dbname=trade_ledger sslmode=disable",
		validPostgresConfig().DSN())

	assert.Equal(t,
		":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		TestConfig().DSN())
}

func TestCreateConfigFromViperConfig(t *testing.T) {
	t.Setenv("TL_DB_HOST", "")
	t.Setenv("TL_DB_DRIVER", "")

	cfg := CreateConfigFromViperConfig(&config.Config{
		Database: config.DatabaseConfig{
			Driver:        "postgres",
			Host:          "db",
			Port:          "6543",
			QueryTimeout:  3 * time.Second,
			RetryAttempts: 2,
		},
		Logger: config.LoggerConfig{Level: "warn"},
	})

	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, "db", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 2, cfg.RetryAttempts)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 0, ParsePort("not-a-port"))
}

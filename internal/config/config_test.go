package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "LOG_LEVEL", "GRPC_PORT", "HTTP_PORT", "API_TOKEN", "DATA_BACKEND",
		"SQLITE_DB_PATH", "DB_CONN_STR", "DB_HOST", "DB_NAME", "SEED_DEFAULTS", "AMQP_URL",
		"SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.GRPCPort)
	assert.Equal(t, "8081", cfg.HTTPPort)
	assert.Equal(t, "dev-token", cfg.APIToken)
	assert.Equal(t, "sqlite", cfg.DataBackend)
	assert.Equal(t, "./data/momoney.db", cfg.SQLiteDBPath)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=momoney sslmode=disable", cfg.DBConnStr)
	assert.True(t, cfg.SeedDefaults)
	assert.Empty(t, cfg.AMQPURL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("DATA_BACKEND", "POSTGRES")
	t.Setenv("DB_CONN_STR", "postgres://u:p@db:5432/momoney?sslmode=disable")
	t.Setenv("SEED_DEFAULTS", "false")
	t.Setenv("AMQP_CONNECT_ATTEMPTS", "not-a-number")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.DataBackend)
	assert.Equal(t, "postgres://u:p@db:5432/momoney?sslmode=disable", cfg.DBConnStr)
	assert.False(t, cfg.SeedDefaults)
	assert.Equal(t, 5, cfg.AMQPConnectAttempts)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel:            "info",
			GRPCPort:            "8080",
			HTTPPort:            "8081",
			APIToken:            "token",
			ShutdownTimeout:     5 * time.Second,
			DataBackend:         "sqlite",
			SQLiteDBPath:        "./data/momoney.db",
			AMQPExchange:        "momoney",
			AMQPQueue:           "budget_overruns",
			AMQPConnectAttempts: 3,
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "Bad port", mutate: func(c *Config) { c.HTTPPort = "http" }, errMsg: "invalid HTTP_PORT 'http'"},
		{name: "Port out of range", mutate: func(c *Config) { c.GRPCPort = "70000" }, errMsg: "must be between 1 and 65535"},
		{name: "Same ports", mutate: func(c *Config) { c.HTTPPort = "8080" }, errMsg: "must differ"},
		{name: "Empty token", mutate: func(c *Config) { c.APIToken = " " }, errMsg: "API_TOKEN cannot be empty"},
		{name: "Unknown backend", mutate: func(c *Config) { c.DataBackend = "memory" }, errMsg: "invalid data backend 'memory'"},
		{name: "Empty sqlite path", mutate: func(c *Config) { c.SQLiteDBPath = "" }, errMsg: "SQLite database path cannot be empty"},
		{name: "Bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, errMsg: "invalid log level"},
		{name: "Bad AMQP scheme", mutate: func(c *Config) { c.AMQPURL = "http://broker" }, errMsg: "invalid AMQP URL scheme 'http'"},
		{name: "Short shutdown", mutate: func(c *Config) { c.ShutdownTimeout = time.Millisecond }, errMsg: "invalid shutdown timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

package cmd_test

import (
	"log/slog"
	"testing"

	"delivery-order/cmd"
	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := cmd.ConfigFromEnv(envOf(nil))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "@every 30s", cfg.OrderReportSchedule)
	assert.Equal(t, []order.Status{order.Created, order.Delivered}, cfg.StatusPolicy.DetailStatuses)
	assert.Equal(t, []order.Status{order.Created}, cfg.StatusPolicy.MatchableStatuses)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	cfg, err := cmd.ConfigFromEnv(envOf(map[string]string{
		"HTTP_PORT":                "9090",
		"DB_HOST":                  "db",
		"DB_PASSWORD":              "secret",
		"LOG_LEVEL":                "debug",
		"ORDER_DETAIL_STATUSES":    "created, matched ,delivered",
		"ORDER_MATCHABLE_STATUSES": "created,matched",
		"ORDER_REPORT_SCHEDULE":    "@every 1m",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "@every 1m", cfg.OrderReportSchedule)
	assert.Equal(t, []order.Status{order.Created, order.Matched, order.Delivered}, cfg.StatusPolicy.DetailStatuses)
	assert.Equal(t, []order.Status{order.Created, order.Matched}, cfg.StatusPolicy.MatchableStatuses)
	assert.Equal(t, "postgres://postgres:secret@db:5432/delivery?sslmode=disable", cfg.DSN())
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "empty password", password: ""},
		{name: "password with spaces and quotes", password: `p@ss w'o"rd`},
		{name: "password with url delimiters", password: "a/b?c#d:e%f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := cmd.ConfigFromEnv(envOf(map[string]string{
				"DB_HOST":     "db.internal",
				"DB_PORT":     "6432",
				"DB_USER":     "delivery",
				"DB_PASSWORD": tt.password,
				"DB_NAME":     "orders",
			}))
			require.NoError(t, err)

			parsed, err := pgconn.ParseConfig(cfg.DSN())

			require.NoError(t, err)
			assert.Equal(t, "db.internal", parsed.Host)
			assert.Equal(t, uint16(6432), parsed.Port)
			assert.Equal(t, "delivery", parsed.User)
			assert.Equal(t, tt.password, parsed.Password)
			assert.Equal(t, "orders", parsed.Database)
			assert.Nil(t, parsed.TLSConfig)
		})
	}

	t.Run("defaults", func(t *testing.T) {
		cfg, err := cmd.ConfigFromEnv(envOf(nil))
		require.NoError(t, err)

		parsed, err := pgconn.ParseConfig(cfg.DSN())

		require.NoError(t, err)
		assert.Equal(t, "delivery", parsed.Database)
		assert.Empty(t, parsed.Password)
	})
}

func TestConfigFromEnv_InvalidValues(t *testing.T) {
	_, err := cmd.ConfigFromEnv(envOf(map[string]string{
		"LOG_LEVEL":                "chatty",
		"ORDER_DETAIL_STATUSES":    "created,lost",
		"ORDER_MATCHABLE_STATUSES": " , ",
	}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "ORDER_DETAIL_STATUSES")
	// a list of only separators is not blank, so it is parsed and rejected
	assert.Contains(t, err.Error(), "ORDER_MATCHABLE_STATUSES")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

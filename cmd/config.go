package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"

	"delivery-order/internal/adapters/out/postgres/orderrepo"
	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel            slog.Level
	StatusPolicy        orderrepo.StatusPolicy
	OrderReportSchedule string
}

// LoadConfig reads .env from the working directory when present and then
// builds the configuration from the environment. Real environment variables
// take precedence over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds the configuration from getenv, applying defaults for
// unset values. Invalid values are all reported together.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:            get("HTTP_PORT", "8080"),
		DBHost:              get("DB_HOST", "localhost"),
		DBPort:              get("DB_PORT", "5432"),
		DBUser:              get("DB_USER", "postgres"),
		DBPassword:          getenv("DB_PASSWORD"),
		DBName:              get("DB_NAME", "delivery"),
		DBSslMode:           get("DB_SSLMODE", "disable"),
		OrderReportSchedule: get("ORDER_REPORT_SCHEDULE", jobs.DefaultOrderReportSchedule),
		StatusPolicy:        orderrepo.DefaultStatusPolicy(),
	}

	var errList []error

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	if raw := getenv("ORDER_DETAIL_STATUSES"); strings.TrimSpace(raw) != "" {
		statuses, err := order.ParseStatuses(raw)
		if err != nil {
			errList = append(errList, fmt.Errorf("ORDER_DETAIL_STATUSES: %w", err))
		}
		cfg.StatusPolicy.DetailStatuses = statuses
	}

	if raw := getenv("ORDER_MATCHABLE_STATUSES"); strings.TrimSpace(raw) != "" {
		statuses, err := order.ParseStatuses(raw)
		if err != nil {
			errList = append(errList, fmt.Errorf("ORDER_MATCHABLE_STATUSES: %w", err))
		}
		cfg.StatusPolicy.MatchableStatuses = statuses
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the postgres:// connection URL for gorm.io/driver/postgres. Every
// part is escaped, so an empty password or one with spaces or quotes is kept
// as is.
func (c Config) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return dsn.String()
}

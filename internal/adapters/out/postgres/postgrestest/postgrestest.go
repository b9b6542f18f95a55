// Package postgrestest starts a disposable PostgreSQL container for the
// repository integration suites and provides fixtures shared by them.
package postgrestest

import (
	"context"
	"errors"
	"fmt"
	"time"

	postgres_adapter "delivery-order/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrInjected is the error added by FailCreatesOn.
var ErrInjected = errors.New("injected create failure")

// Database is a migrated database running in a container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects GORM to it and applies the migration.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres_adapter.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Reset empties every table and restarts the order id sequence at 1.
func (d *Database) Reset() error {
	return d.DB.Exec(`TRUNCATE TABLE
		senders, departures, receivers, destinations,
		transportations, products, orders, users
		RESTART IDENTITY CASCADE`).Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// FailCreatesOn makes every GORM create on table fail with ErrInjected until
// the returned function is called.
func (d *Database) FailCreatesOn(table string) (restore func(), err error) {
	name := "postgrestest:fail_" + table
	err = d.DB.Callback().Create().Before("gorm:create").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(ErrInjected)
		}
	})
	if err != nil {
		return nil, err
	}

	return func() {
		_ = d.DB.Callback().Create().Remove(name)
	}, nil
}

// Count returns the number of rows in table.
func (d *Database) Count(table string) (int64, error) {
	var n int64
	err := d.DB.Table(table).Count(&n).Error
	return n, err
}

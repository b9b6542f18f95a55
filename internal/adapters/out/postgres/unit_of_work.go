// Package postgres wires the GORM repositories into a Unit of Work and owns
// the schema migration.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, orderrepo.DefaultStatusPolicy())
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	requester, err := uow.UserRepository().GetByWalletAddress(ctx, wallet)
//	if err != nil {
//	    _ = uow.Rollback(ctx)
//	    return err
//	}
//
//	if _, err = uow.OrderRepository().CreateOrder(ctx, o); err != nil {
//	    _ = uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance holds at most one transaction; goroutines must use
// separate instances.
package postgres

import (
	"context"

	"delivery-order/internal/adapters/out/postgres/orderrepo"
	"delivery-order/internal/adapters/out/postgres/participantrepo"
	"delivery-order/internal/adapters/out/postgres/userrepo"
	"delivery-order/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	policy orderrepo.StatusPolicy
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. policy is handed to every order repository it creates.
func NewGormUnitOfWorkFactory(db *gorm.DB, policy orderrepo.StatusPolicy) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, policy: policy}
}

// Create produces a new UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:     f.db,
		policy: f.policy,
	}
}

// GormUnitOfWork coordinates one database transaction across the order,
// participant and user repositories.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	policy orderrepo.StatusPolicy
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if Begin was not called.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if Begin was not called.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns a repository on the active transaction, or on the
// plain connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow.policy)
}

func (uow *GormUnitOfWork) OrderParticipantRepository() ports.OrderParticipantRepository {
	return participantrepo.NewGormOrderParticipantRepository(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

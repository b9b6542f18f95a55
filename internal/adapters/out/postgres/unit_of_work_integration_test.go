package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "delivery-order/internal/adapters/out/postgres"
	"delivery-order/internal/adapters/out/postgres/orderrepo"
	"delivery-order/internal/adapters/out/postgres/postgrestest"
	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/core/ports"
	"delivery-order/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises GormUnitOfWork against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *postgrestest.Database
	factory  ports.UnitOfWorkFactory
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB, orderrepo.DefaultStatusPolicy())
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.OrderParticipantRepository())
	suite.NotNil(uow1.UserRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsUserAndOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	requester, err := postgrestest.NewUser("0xrequester")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, requester))

	o, err := postgrestest.NewOrder(requester.ID(), "detail")
	suite.Require().NoError(err)
	id, err := uow.OrderRepository().CreateOrder(ctx, o)
	suite.Require().NoError(err)

	// visible inside the transaction
	_, err = uow.OrderParticipantRepository().FindSenderReceiverLocationAndPhoneNumberByOrderID(ctx, id)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	result, err := fresh.OrderParticipantRepository().FindSenderReceiverLocationAndPhoneNumberByOrderID(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(id, result.ID)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	requester, err := postgrestest.NewUser("0xrequester")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, requester))

	o, err := postgrestest.NewOrder(requester.ID(), "")
	suite.Require().NoError(err)
	id, err := uow.OrderRepository().CreateOrder(ctx, o)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.OrderParticipantRepository().FindSenderReceiverLocationAndPhoneNumberByOrderID(ctx, id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.UserRepository().GetByWalletAddress(ctx, "0xrequester")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FailedCreateOrderKeepsOuterTransactionUsable() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	requester, err := postgrestest.NewUser("0xrequester")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, requester))

	restore, err := suite.database.FailCreatesOn("departures")
	suite.Require().NoError(err)
	o, err := postgrestest.NewOrder(requester.ID(), "")
	suite.Require().NoError(err)
	_, err = uow.OrderRepository().CreateOrder(ctx, o)
	restore()
	suite.Require().ErrorIs(err, postgrestest.ErrInjected)

	// the savepoint was rolled back; the user insert survives
	suite.Require().NoError(uow.Commit(ctx))

	n, err := suite.database.Count("orders")
	suite.Require().NoError(err)
	suite.Zero(n)
	n, err = suite.database.Count("destinations")
	suite.Require().NoError(err)
	suite.Zero(n)
	n, err = suite.database.Count("users")
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Isolation() {
	ctx := context.Background()

	requester, err := postgrestest.NewUser("0xrequester")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().UserRepository().Add(ctx, requester))

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	o, err := postgrestest.NewOrder(requester.ID(), "")
	suite.Require().NoError(err)
	id, err := uow1.OrderRepository().CreateOrder(ctx, o)
	suite.Require().NoError(err)

	_, err = uow2.OrderParticipantRepository().FindSenderReceiverLocationAndPhoneNumberByOrderID(ctx, id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "uncommitted order must not be visible")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	counts, err := suite.factory.Create().OrderRepository().CountByStatus(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts[order.Created])
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsIdempotent() {
	suite.Require().NoError(postgres_adapter.Migrate(suite.database.DB))

	for _, name := range []string{"fk_orders_requester", "fk_products_order", "fk_senders_departure"} {
		var n int64
		err := suite.database.DB.Raw(
			"SELECT COUNT(*) FROM information_schema.table_constraints WHERE constraint_name = ?", name,
		).Scan(&n).Error
		suite.Require().NoError(err)
		suite.Equal(int64(1), n, name)
	}
}

package participantrepo_test

import (
	"context"
	"testing"

	"delivery-order/internal/adapters/out/postgres/orderrepo"
	"delivery-order/internal/adapters/out/postgres/participantrepo"
	"delivery-order/internal/adapters/out/postgres/postgrestest"
	"delivery-order/internal/adapters/out/postgres/userrepo"
	"delivery-order/internal/core/dto"
	"delivery-order/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OrderParticipantRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *postgrestest.Database
	repository *participantrepo.GormOrderParticipantRepository
	orderID    int64
}

func TestOrderParticipantRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderParticipantRepositoryIntegrationTestSuite))
}

func (suite *OrderParticipantRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderParticipantRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.database.Reset())

	requester, err := postgrestest.NewUser("0xrequester")
	suite.Require().NoError(err)
	suite.Require().NoError(userrepo.NewGormUserRepository(suite.database.DB).Add(ctx, requester))

	o, err := postgrestest.NewOrder(requester.ID(), "detail")
	suite.Require().NoError(err)
	suite.orderID, err = orderrepo.NewGormOrderRepository(suite.database.DB, orderrepo.DefaultStatusPolicy()).
		CreateOrder(ctx, o)
	suite.Require().NoError(err)

	suite.repository = participantrepo.NewGormOrderParticipantRepository(suite.database.DB)
}

func (suite *OrderParticipantRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderParticipantRepositoryIntegrationTestSuite) TestFindSenderReceiver_ExistingOrder() {
	result, err := suite.repository.FindSenderReceiverLocationAndPhoneNumberByOrderID(context.Background(), suite.orderID)

	suite.Require().NoError(err)
	suite.Equal(dto.OrderSenderReceiver{
		ID: 1,
		Departure: dto.SenderEndpoint{
			X:      0,
			Y:      0,
			Sender: dto.Phone{Phone: "01012345678"},
		},
		Destination: dto.ReceiverEndpoint{
			X:        37.5,
			Y:        112,
			Receiver: dto.Phone{Phone: "01087654321"},
		},
	}, result)
}

func (suite *OrderParticipantRepositoryIntegrationTestSuite) TestFindSenderReceiver_UnknownOrder() {
	result, err := suite.repository.FindSenderReceiverLocationAndPhoneNumberByOrderID(context.Background(), 32)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Equal(errs.NewObjectNotFoundError("orderId", int64(32)), err)
	suite.Equal(dto.OrderSenderReceiver{}, result)
}

func (suite *OrderParticipantRepositoryIntegrationTestSuite) TestFindSenderReceiver_MissingReceiver() {
	err := suite.database.DB.Exec("DELETE FROM receivers WHERE id = ?", suite.orderID).Error
	suite.Require().NoError(err)

	_, err = suite.repository.FindSenderReceiverLocationAndPhoneNumberByOrderID(context.Background(), suite.orderID)

	suite.Require().ErrorIs(err, orderrepo.ErrOrderRecordIncomplete)
	suite.Contains(err.Error(), "receivers")
}

func (suite *OrderParticipantRepositoryIntegrationTestSuite) TestFindSenderReceiver_DeletingOrderCascades() {
	err := suite.database.DB.Exec("DELETE FROM orders WHERE id = ?", suite.orderID).Error
	suite.Require().NoError(err)

	for _, table := range []string{"products", "transportations", "destinations", "receivers", "departures", "senders"} {
		n, countErr := suite.database.Count(table)
		suite.Require().NoError(countErr)
		suite.Zero(n, table)
	}

	_, err = suite.repository.FindSenderReceiverLocationAndPhoneNumberByOrderID(context.Background(), suite.orderID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

package commands_test

import (
	"testing"

	"delivery-order/internal/core/application/usecases/commands"
	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAssignDeliveryPersonCommand(t *testing.T) {
	cmd, err := commands.NewAssignDeliveryPersonCommand(3, "0xcourier")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(3), cmd.DeliveryPerson().OrderID())

	_, err = commands.NewAssignDeliveryPersonCommand(-1, "0xcourier")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAssignDeliveryPersonCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDeliveryPersonCommand(3, "0xcourier")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("UpdateDeliveryPersonAtOrder", ctx, mock.MatchedBy(func(dp order.DeliveryPerson) bool {
			return dp.OrderID() == 3 && dp.WalletAddress().String() == "0xcourier"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignDeliveryPersonCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDeliveryPersonCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDeliveryPersonCommand(32, "0xcourier")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("UpdateDeliveryPersonAtOrder", ctx, mock.Anything).
			Return(errs.NewObjectNotFoundError("orderId", int64(32))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignDeliveryPersonCommandHandler(factory).Handle(ctx, cmd)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(32), notFound.ID)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestAssignDeliveryPersonCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	err := commands.NewAssignDeliveryPersonCommandHandler(factory).Handle(t.Context(), commands.AssignDeliveryPersonCommand{})

	require.ErrorIs(t, err, commands.ErrAssignDeliveryPersonCommandIsNotConstructed)
}

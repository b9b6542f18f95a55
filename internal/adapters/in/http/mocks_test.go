package http_test

import (
	"context"

	"delivery-order/internal/core/application/usecases/commands"
	"delivery-order/internal/core/application/usecases/queries"
	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/core/dto"

	"github.com/stretchr/testify/mock"
)

type MockCreateUserHandler struct{ mock.Mock }

func (m *MockCreateUserHandler) Handle(ctx context.Context, cmd commands.CreateUserCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type MockAssignDeliveryPersonHandler struct{ mock.Mock }

func (m *MockAssignDeliveryPersonHandler) Handle(ctx context.Context, cmd commands.AssignDeliveryPersonCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrderDetailsHandler struct{ mock.Mock }

func (m *MockGetOrderDetailsHandler) Handle(
	ctx context.Context, query queries.GetOrderDetailsQuery,
) ([]dto.OrderDetail, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]dto.OrderDetail), args.Error(1)
}

type MockGetMatchableOrdersHandler struct{ mock.Mock }

func (m *MockGetMatchableOrdersHandler) Handle(
	ctx context.Context, query queries.GetMatchableOrdersQuery,
) ([]dto.MatchableOrder, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]dto.MatchableOrder), args.Error(1)
}

type MockGetOrderSenderReceiverHandler struct{ mock.Mock }

func (m *MockGetOrderSenderReceiverHandler) Handle(
	ctx context.Context, query queries.GetOrderSenderReceiverQuery,
) (dto.OrderSenderReceiver, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(dto.OrderSenderReceiver), args.Error(1)
}

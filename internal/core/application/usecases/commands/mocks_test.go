package commands_test

import (
	"context"

	"delivery-order/internal/core/application/usecases/commands"
	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/core/domain/model/user"
	"delivery-order/internal/core/dto"
	"delivery-order/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) CreateOrder(ctx context.Context, o *order.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindAllCreatedOrDeliveredOrderDetailByOrderIDs(
	ctx context.Context, ids []int64,
) ([]dto.OrderDetail, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]dto.OrderDetail), args.Error(1)
}

func (m *MockOrderRepository) FindAllMatchableOrderByWalletAddress(
	ctx context.Context, wallet string,
) ([]dto.MatchableOrder, error) {
	args := m.Called(ctx, wallet)
	return args.Get(0).([]dto.MatchableOrder), args.Error(1)
}

func (m *MockOrderRepository) UpdateDeliveryPersonAtOrder(ctx context.Context, dp order.DeliveryPerson) error {
	args := m.Called(ctx, dp)
	return args.Error(0)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[order.Status]int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByWalletAddress(ctx context.Context, wallet string) (*user.User, error) {
	args := m.Called(ctx, wallet)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW satisfies OrderUoW, UserUoW and UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

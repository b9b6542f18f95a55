package http

import (
	"context"
	"log/slog"
	"net/http"

	"delivery-order/internal/core/application/usecases/commands"
	"delivery-order/internal/core/application/usecases/queries"
	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/core/dto"
	"delivery-order/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Handler contracts the server depends on. The application handlers in
// commands and queries satisfy them.
type (
	CreateUserHandler interface {
		Handle(ctx context.Context, cmd commands.CreateUserCommand) (kernel.UUID, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int64, error)
	}

	AssignDeliveryPersonHandler interface {
		Handle(ctx context.Context, cmd commands.AssignDeliveryPersonCommand) error
	}

	GetOrderDetailsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailsQuery) ([]dto.OrderDetail, error)
	}

	GetMatchableOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetMatchableOrdersQuery) ([]dto.MatchableOrder, error)
	}

	GetOrderSenderReceiverHandler interface {
		Handle(ctx context.Context, query queries.GetOrderSenderReceiverQuery) (dto.OrderSenderReceiver, error)
	}
)

// Handlers groups everything Server needs to answer requests.
type Handlers struct {
	CreateUser             CreateUserHandler
	CreateOrder            CreateOrderHandler
	AssignDeliveryPerson   AssignDeliveryPersonHandler
	GetOrderDetails        GetOrderDetailsHandler
	GetMatchableOrders     GetMatchableOrdersHandler
	GetOrderSenderReceiver GetOrderSenderReceiverHandler
}

// Server translates HTTP requests into commands and queries. Routing and
// parameter binding come from the generated servers package.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req CreateUserRequest
	if err := s.bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateUserCommand(req.WalletAddress, req.profile())
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.UserCreated{Id: id.Bytes()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := s.bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := req.command()
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{OrderId: orderID})
}

// GetOrderDetails handles GET /api/v1/orders?ids=1,2,3. No ids means an
// empty result.
func (s *Server) GetOrderDetails(ctx echo.Context, params servers.GetOrderDetailsParams) error {
	ids := []int64{}
	if params.Ids != nil {
		ids = *params.Ids
	}

	query, err := queries.NewGetOrderDetailsQuery(ids)
	if err != nil {
		return s.fail(ctx, err)
	}

	details, err := s.handlers.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, details)
}

// GetMatchableOrders handles GET /api/v1/orders/matchable?walletAddress=...
func (s *Server) GetMatchableOrders(ctx echo.Context, params servers.GetMatchableOrdersParams) error {
	query, err := queries.NewGetMatchableOrdersQuery(params.WalletAddress)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.GetMatchableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// AssignDeliveryPerson handles PUT /api/v1/orders/:id/delivery-person.
func (s *Server) AssignDeliveryPerson(ctx echo.Context, orderID servers.OrderId) error {
	var req AssignDeliveryPersonRequest
	if err := s.bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignDeliveryPersonCommand(orderID, req.WalletAddress)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.AssignDeliveryPerson.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderSenderReceiver handles GET /api/v1/orders/:id/sender-receiver.
func (s *Server) GetOrderSenderReceiver(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetOrderSenderReceiverQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.GetOrderSenderReceiver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}

func (s *Server) fail(ctx echo.Context, err error) error {
	resp := errorResponse(err)
	if resp.Code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
	}
	return ctx.JSON(resp.Code, resp)
}

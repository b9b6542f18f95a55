package cmd

import (
	"log/slog"

	httpadapter "delivery-order/internal/adapters/in/http"
	"delivery-order/internal/adapters/out/postgres"
	"delivery-order/internal/adapters/out/postgres/orderrepo"
	"delivery-order/internal/adapters/out/postgres/participantrepo"
	"delivery-order/internal/core/application/usecases/commands"
	"delivery-order/internal/core/application/usecases/queries"
	"delivery-order/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	logger     *slog.Logger
}

// NewCompositionRoot wires the application around gormDB. All metrics are
// registered on a registry owned by the root and served from /metrics.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, config.StatusPolicy),
		registry:   registry,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDeliveryPersonCommandHandler() commands.AssignDeliveryPersonCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryPersonCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetMatchableOrdersQueryHandler() queries.GetMatchableOrdersQueryHandler {
	return queries.NewGetMatchableOrdersQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetOrderSenderReceiverQueryHandler() queries.GetOrderSenderReceiverQueryHandler {
	return queries.NewGetOrderSenderReceiverQueryHandler(participantrepo.NewGormOrderParticipantRepository(c.gormDB))
}

// CreateRouter builds the echo instance serving the REST API, /health,
// /metrics and the Swagger UI.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateUser:             c.CreateCreateUserCommandHandler(),
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		AssignDeliveryPerson:   c.CreateAssignDeliveryPersonCommandHandler(),
		GetOrderDetails:        c.CreateGetOrderDetailsQueryHandler(),
		GetMatchableOrders:     c.CreateGetMatchableOrdersQueryHandler(),
		GetOrderSenderReceiver: c.CreateGetOrderSenderReceiverQueryHandler(),
	}, c.logger)

	return httpadapter.NewRouter(server, httpadapter.NewMetrics(c.registry), c.registry, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reportJob := jobs.NewOrderStatusReportJob(
		c.orderRepository(), c.config.OrderReportSchedule, c.registry, c.logger,
	)
	return jobs.NewJobManager(reportJob)
}

func (c *CompositionRoot) orderRepository() *orderrepo.GormOrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, c.config.StatusPolicy)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

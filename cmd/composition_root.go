package cmd

import (
	"log/slog"

	httpin "foodly/internal/adapters/in/http"
	"foodly/internal/adapters/out/postgres"
	sessionredis "foodly/internal/adapters/out/redis"
	"foodly/internal/core/application/session"
	"foodly/internal/core/application/usecases/commands"
	"foodly/internal/core/application/usecases/queries"
	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/core/domain/services"
	"foodly/internal/core/ports"
	"foodly/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	redis      goredis.UniversalClient
	uowFactory ports.UnitOfWorkFactory
	clock      kernel.Clock
	policy     services.StalenessPolicy
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redis goredis.UniversalClient,
	clock kernel.Clock,
	logger *slog.Logger,
) (CompositionRoot, error) {
	policy := services.NewDefaultStalenessPolicy()
	if config.StalenessWindow != 0 {
		var err error
		policy, err = services.NewStalenessPolicy(config.StalenessWindow)
		if err != nil {
			return CompositionRoot{}, err
		}
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		redis:      redis,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
		policy:     policy,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock, c.policy)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetDietCommandHandler() commands.SetDietCommandHandler {
	return commands.NewSetDietCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	return commands.NewAdvanceStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReapStaleCartsCommandHandler() commands.ReapStaleCartsCommandHandler {
	return commands.NewReapStaleCartsCommandHandler(c.orderUoWFactory(), c.clock, c.policy)
}

func (c *CompositionRoot) CreateSeedProductsCommandHandler() commands.SeedProductsCommandHandler {
	return commands.NewSeedProductsCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateSessionBinder() *session.Binder {
	return session.NewBinder(
		sessionredis.NewSessionStore(c.redis),
		c.CreateCreateOrderCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateRemoveOrderCommandHandler(),
		queries.NewCartExistsQueryHandler(c.gormDB),
		c.policy,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Handlers{
			AddItem:           c.CreateAddItemCommandHandler(),
			RemoveItem:        c.CreateRemoveItemCommandHandler(),
			SetDiet:           c.CreateSetDietCommandHandler(),
			AdvanceStatus:     c.CreateAdvanceStatusCommandHandler(),
			ListProducts:      queries.NewListProductsQueryHandler(c.gormDB),
			GetItemsForOrder:  queries.NewGetItemsForOrderQueryHandler(c.gormDB),
			GetItem:           queries.NewGetItemQueryHandler(c.gormDB),
			GetOrdersByStatus: queries.NewGetOrdersByStatusQueryHandler(c.gormDB),
			GetActiveOrders:   queries.NewGetActiveOrdersQueryHandler(c.gormDB),
			GetOrderDetail:    queries.NewGetOrderDetailQueryHandler(c.gormDB),
			OrderExists:       queries.NewOrderExistsQueryHandler(c.gormDB),
			ItemInOrder:       queries.NewItemInOrderQueryHandler(c.gormDB),
		},
		c.CreateSessionBinder(),
		c.policy,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReapStaleCartsCommandHandler(), c.config.ReaperSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

package cmd

import (
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/counterrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	counterRepo *counterrepo.GormCounterRepository
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		// The counter runs on the base connection on purpose: order numbers
		// must stay unique even when the surrounding order save rolls back.
		counterRepo: counterrepo.NewGormCounterRepository(gormDB),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(c.counterRepo, f, c.config.OrderNumberPrefix)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountUnreadOrdersQueryHandler() queries.CountUnreadOrdersQueryHandler {
	return queries.NewCountUnreadOrdersQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

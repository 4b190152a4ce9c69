package cmd

import (
	"math/rand/v2"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/catalog"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	products   *catalog.GormProductCatalog
	shops      *catalog.GormShopCatalog
	sequence   *postgres.GormOrderSequence
	pricing    services.PricingService
	events     ports.OrderEventPublisher
}

// NewCompositionRoot wires all adapters. The event publisher may be nil
// when no broker is configured; commands then skip publishing.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, events ports.OrderEventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		products:   catalog.NewGormProductCatalog(gormDB),
		shops:      catalog.NewGormShopCatalog(gormDB),
		sequence:   postgres.NewGormOrderSequence(gormDB),
		pricing:    services.NewPricingService(),
		events:     events,
	}
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.cartUoWFactory(), c.products)
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(
		c.fullUoWFactory(), c.products, c.sequence, c.pricing, c.events)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.events)
}

func (c *CompositionRoot) CreateAssignShopCommandHandler() commands.AssignShopCommandHandler {
	return commands.NewAssignShopCommandHandler(c.orderUoWFactory(), c.shops, c.events)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.orderUoWFactory(), c.events)
}

func (c *CompositionRoot) CreateMarkShopPaidCommandHandler() commands.MarkShopPaidCommandHandler {
	return commands.NewMarkShopPaidCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.events)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyOrdersQueryHandler() queries.GetMyOrdersQueryHandler {
	return queries.NewGetMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateNearestShopsQueryHandler() queries.NearestShopsQueryHandler {
	ranker := services.NewShopRanker(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	return queries.NewNearestShopsQueryHandler(c.gormDB, ranker)
}

func (c *CompositionRoot) CreateCountUncompletedOrdersQueryHandler() queries.CountUncompletedOrdersQueryHandler {
	return queries.NewCountUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
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

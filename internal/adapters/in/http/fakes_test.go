package http_test

import (
	"context"
	"fmt"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// In-memory ports so handler tests run the real command handlers without a
// database.

type memCartRepository struct {
	carts map[string]*cart.Cart
}

func newMemCartRepository() *memCartRepository {
	return &memCartRepository{carts: make(map[string]*cart.Cart)}
}

func (r *memCartRepository) Add(_ context.Context, aggregate *cart.Cart) error {
	r.carts[aggregate.CustomerID().String()] = aggregate
	return nil
}

func (r *memCartRepository) Update(_ context.Context, aggregate *cart.Cart) error {
	r.carts[aggregate.CustomerID().String()] = aggregate
	return nil
}

func (r *memCartRepository) GetByCustomer(_ context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	aggregate, ok := r.carts[customerID.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("cart", customerID)
	}
	return aggregate, nil
}

type memOrderRepository struct {
	orders map[string]*order.Order
}

func newMemOrderRepository() *memOrderRepository {
	return &memOrderRepository{orders: make(map[string]*order.Order)}
}

func (r *memOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	r.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	r.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	aggregate, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return aggregate, nil
}

func (r *memOrderRepository) GetByCode(_ context.Context, code string) (*order.Order, error) {
	for _, aggregate := range r.orders {
		if aggregate.Code() == code {
			return aggregate, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", code)
}

func (r *memOrderRepository) GetByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	var result []*order.Order
	for _, aggregate := range r.orders {
		if aggregate.BelongsTo(customerID) {
			result = append(result, aggregate)
		}
	}
	return result, nil
}

// memUoW satisfies all three unit-of-work interfaces over the in-memory
// repositories. Transactions are no-ops.
type memUoW struct {
	cartRepo  *memCartRepository
	orderRepo *memOrderRepository
}

func (u *memUoW) Begin(context.Context) error    { return nil }
func (u *memUoW) Commit(context.Context) error   { return nil }
func (u *memUoW) Rollback(context.Context) error { return nil }

func (u *memUoW) CartRepository() ports.CartRepository   { return u.cartRepo }
func (u *memUoW) OrderRepository() ports.OrderRepository { return u.orderRepo }

type memUoWFactory struct{ uow *memUoW }

func (f memUoWFactory) Create() commands.UoW { return f.uow }

type memCartUoWFactory struct{ uow *memUoW }

func (f memCartUoWFactory) Create() commands.CartUoW { return f.uow }

type memOrderUoWFactory struct{ uow *memUoW }

func (f memOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type staticCatalog struct {
	products map[string]ports.Product
}

func (c staticCatalog) GetProduct(_ context.Context, id kernel.UUID) (ports.Product, error) {
	product, ok := c.products[id.String()]
	if !ok {
		return ports.Product{}, errs.NewObjectNotFoundError("product", id)
	}
	return product, nil
}

type staticSequence struct {
	next int64
}

func (s *staticSequence) NextCode(context.Context) (string, error) {
	code := fmt.Sprintf("ORDER%d", s.next)
	s.next++
	return code, nil
}

package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeProduct(id kernel.UUID) ports.Product {
	return ports.Product{
		ID:       id,
		Name:     "Filter Coffee Powder",
		Price:    150,
		IsActive: true,
	}
}

func TestAddToCartCommandHandler_Handle_CreatesCartOnFirstAdd(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewAddToCartCommand(customerID, productID, 2, "")

	catalog := new(MockProductCatalog)
	catalog.On("GetProduct", ctx, productID).Return(activeProduct(productID), nil).Once()

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByCustomer", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("cart", customerID)).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory, catalog)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Len(t, created.Lines(), 1)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestAddToCartCommandHandler_Handle_MergesIntoExistingCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewAddToCartCommand(customerID, productID, 1, "")

	existing, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	line, err := cart.NewLine(productID, "Filter Coffee Powder", 150, 2, "")
	require.NoError(t, err)
	require.NoError(t, existing.AddLine(line))

	catalog := new(MockProductCatalog)
	catalog.On("GetProduct", ctx, productID).Return(activeProduct(productID), nil).Once()

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByCustomer", ctx, customerID).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory, catalog)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Same(t, existing, updated)

	lines := existing.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 3, lines[0].Quantity())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddToCartCommandHandler_Handle_InactiveProduct(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewAddToCartCommand(customerID, productID, 1, "")

	product := activeProduct(productID)
	product.IsActive = false

	catalog := new(MockProductCatalog)
	catalog.On("GetProduct", ctx, productID).Return(product, nil).Once()

	factory := new(MockCartUoWFactory)

	h := commands.NewAddToCartCommandHandler(factory, catalog)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestAddToCartCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewAddToCartCommandHandler(new(MockCartUoWFactory), new(MockProductCatalog))
	_, err := h.Handle(ctx, commands.AddToCartCommand{})
	require.Error(t, err)
}

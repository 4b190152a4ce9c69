package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartWithLine(t *testing.T, customerID, productID kernel.UUID, quantity int) *cart.Cart {
	t.Helper()

	aggregate, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	line, err := cart.NewLine(productID, "Filter Coffee Powder", 150, quantity, "")
	require.NoError(t, err)
	require.NoError(t, aggregate.AddLine(line))
	return aggregate
}

func TestUpdateCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	aggregate := cartWithLine(t, customerID, productID, 2)
	cmd, err := commands.NewUpdateCartItemCommand(customerID, productID, 5, "")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByCustomer", ctx, customerID).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCartItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Same(t, aggregate, updated)

	lines := updated.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 5, lines[0].Quantity())
}

func TestUpdateCartItemCommandHandler_Handle_ZeroQuantityRemovesLine(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	aggregate := cartWithLine(t, customerID, productID, 2)
	cmd, err := commands.NewUpdateCartItemCommand(customerID, productID, 0, "")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByCustomer", ctx, customerID).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCartItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, updated.IsEmpty())
}

func TestUpdateCartItemCommandHandler_Handle_LineNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := cartWithLine(t, customerID, kernel.NewUUID(), 2)
	cmd, err := commands.NewUpdateCartItemCommand(customerID, kernel.NewUUID(), 3, "")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByCustomer", ctx, customerID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCartItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRemoveCartItemCommandHandler_Handle_MissingCartFails(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewRemoveCartItemCommand(customerID, kernel.NewUUID(), "")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByCustomer", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("cart", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveCartItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRemoveCartItemCommandHandler_Handle_MissingLineIsNoOp(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := cartWithLine(t, customerID, kernel.NewUUID(), 2)
	cmd, err := commands.NewRemoveCartItemCommand(customerID, kernel.NewUUID(), "")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByCustomer", ctx, customerID).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveCartItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, updated.Lines(), 1)
}

func TestRemoveCartItemCommandHandler_Handle_RemovesLine(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	aggregate := cartWithLine(t, customerID, productID, 2)
	cmd, err := commands.NewRemoveCartItemCommand(customerID, productID, "")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByCustomer", ctx, customerID).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveCartItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, updated.IsEmpty())
}

func TestClearCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := cartWithLine(t, customerID, kernel.NewUUID(), 2)
	cmd, err := commands.NewClearCartCommand(customerID)
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByCustomer", ctx, customerID).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearCartCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, updated.IsEmpty())
}

func TestClearCartCommandHandler_Handle_MissingCartSucceeds(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewClearCartCommand(customerID)
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByCustomer", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("cart", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearCartCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Nil(t, updated)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkShopPaidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, nil, time.Now().UTC())
	cmd, err := commands.NewMarkShopPaidCommand(aggregate.Code())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", ctx, aggregate.Code()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkShopPaidCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, aggregate.ShopPaid())
}

package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAssignDeliveryCommand_Validation(t *testing.T) {
	_, err := commands.NewAssignDeliveryCommand("", "Suresh")
	require.ErrorIs(t, err, commands.ErrOrderCodeIsRequired)

	_, err = commands.NewAssignDeliveryCommand("ORDER1001", "")
	require.ErrorIs(t, err, commands.ErrAgentNameIsRequired)
}

func TestAssignDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, nil, time.Now().UTC())
	cmd, err := commands.NewAssignDeliveryCommand(aggregate.Code(), "Suresh")
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

	events := new(MockEventPublisher)
	events.On("PublishOrderStatusChanged", ctx, aggregate).Return(nil).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory, events)
	otp, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, order.StatusOutForDelivery, aggregate.Status())
	require.Equal(t, "Suresh", aggregate.DeliveryAgent())
	require.Len(t, aggregate.OTP(), 4)
	require.Equal(t, aggregate.OTP(), otp)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_ReassignmentKeepsOTP(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, nil, time.Now().UTC())

	repo := new(MockOrderRepository)
	repo.On("GetByCode", ctx, aggregate.Code()).Return(aggregate, nil).Twice()
	repo.On("Update", ctx, aggregate).Return(nil).Twice()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewAssignDeliveryCommandHandler(factory, nil)

	first, err := commands.NewAssignDeliveryCommand(aggregate.Code(), "Suresh")
	require.NoError(t, err)
	firstOTP, err := h.Handle(ctx, first)
	require.NoError(t, err)

	second, err := commands.NewAssignDeliveryCommand(aggregate.Code(), "Manoj")
	require.NoError(t, err)
	secondOTP, err := h.Handle(ctx, second)
	require.NoError(t, err)

	require.Equal(t, firstOTP, secondOTP)
	require.Equal(t, "Manoj", aggregate.DeliveryAgent())
}

package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"farmaya/internal/core/application/usecases/commands"
	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/errs"
)

func acceptedOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(
		kernel.NewUUID(), kernel.NewUUID(),
		"Paracetamol 500mg", 1, 1500, false, "",
	)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"Av. Siempre Viva 742", order.DefaultPaymentMethod,
		time.Now().UTC(), order.Aceptado, "", []*order.LineItem{item},
	)
	require.NoError(t, err)
	return o
}

func courierActor(t *testing.T) order.Actor {
	t.Helper()

	actor, err := order.NewActor(kernel.NewUUID(), account.Repartidor)
	require.NoError(t, err)
	return actor
}

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := acceptedOrder(t)
	courier := courierActor(t)
	cmd, err := commands.NewClaimOrderCommand(o.ID(), courier)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("HasRejection", mock.Anything, o.ID(), courier.ID()).Return(false, nil).Once(),
		orderRepo.On("Claim", mock.Anything, o.ID(), courier.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	claimed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.EnCamino, claimed.Status())
	require.NotNil(t, claimed.Courier())
	assert.True(t, claimed.Courier().IsEqual(courier.ID()))
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_AlreadyRejectedByCourier(t *testing.T) {
	ctx := t.Context()
	o := acceptedOrder(t)
	courier := courierActor(t)
	cmd, err := commands.NewClaimOrderCommand(o.ID(), courier)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("HasRejection", mock.Anything, o.ID(), courier.ID()).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrActionNotAllowed)
	assert.Nil(t, o.Courier())
	uow.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	o := acceptedOrder(t)
	courier := courierActor(t)
	cmd, err := commands.NewClaimOrderCommand(o.ID(), courier)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("HasRejection", mock.Anything, o.ID(), courier.ID()).Return(false, nil).Once(),
		orderRepo.On("Claim", mock.Anything, o.ID(), courier.ID()).
			Return(errs.NewConflictErrorWithCause("claim order", order.ErrOrderAlreadyClaimed)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ClaimOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewClaimOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"farmaya/internal/core/application/usecases/commands"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/errs"
)

func TestResubmitPrescriptionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newPrescriptionFixture(t)
	require.NoError(t, f.order.ReviewPrescription(
		f.pharmacy, f.item.ID(), order.PrescriptionRejected, "Ilegible"))
	cmd, err := commands.NewResubmitPrescriptionCommand(f.item.ID(), f.customer, "receta-2.pdf")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	fileStore := new(MockFileStore)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItem", mock.Anything, f.item.ID()).Return(f.order, nil).Once(),
		orderRepo.On("Update", mock.Anything, f.order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		fileStore.On("Delete", mock.Anything, "receta-1.pdf").Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResubmitPrescriptionCommandHandler(factory, fileStore)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "receta-2.pdf", f.item.PrescriptionFile())
	assert.Equal(t, order.PrescriptionPending, f.item.PrescriptionStatus())
	orderRepo.AssertExpectations(t)
	fileStore.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestResubmitPrescriptionCommandHandler_Handle_KeepsOrderOnDeleteFailure(t *testing.T) {
	ctx := t.Context()
	f := newPrescriptionFixture(t)
	require.NoError(t, f.order.ReviewPrescription(
		f.pharmacy, f.item.ID(), order.PrescriptionRejected, "Ilegible"))
	cmd, err := commands.NewResubmitPrescriptionCommand(f.item.ID(), f.customer, "receta-2.pdf")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	fileStore := new(MockFileStore)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItem", mock.Anything, f.item.ID()).Return(f.order, nil).Once(),
		orderRepo.On("Update", mock.Anything, f.order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		fileStore.On("Delete", mock.Anything, "receta-1.pdf").Return(errors.New("disk error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResubmitPrescriptionCommandHandler(factory, fileStore)
	updated, err := h.Handle(ctx, cmd)

	// The commit already happened; a dangling file must not fail the request.
	require.NoError(t, err)
	require.NotNil(t, updated)
	fileStore.AssertExpectations(t)
}

func TestResubmitPrescriptionCommandHandler_Handle_NotRejected(t *testing.T) {
	ctx := t.Context()
	f := newPrescriptionFixture(t)
	cmd, err := commands.NewResubmitPrescriptionCommand(f.item.ID(), f.customer, "receta-2.pdf")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	fileStore := new(MockFileStore)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItem", mock.Anything, f.item.ID()).Return(f.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResubmitPrescriptionCommandHandler(factory, fileStore)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	fileStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAcknowledgeRejectionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newPrescriptionFixture(t)
	require.NoError(t, f.order.ReviewPrescription(
		f.pharmacy, f.item.ID(), order.PrescriptionRejected, "Vencida"))
	cmd, err := commands.NewAcknowledgeRejectionCommand(f.item.ID(), f.customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItem", mock.Anything, f.item.ID()).Return(f.order, nil).Once(),
		orderRepo.On("Update", mock.Anything, f.order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcknowledgeRejectionCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, f.item.RejectionAcknowledged())
	assert.True(t, updated.CanAccept())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

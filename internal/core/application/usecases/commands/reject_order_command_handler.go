package commands

import (
	"context"

	"farmaya/internal/core/domain/model/order"
)

// RejectOrderCommandHandler records that a courier declined an order.
// Rejection is a per-courier filter, not an order state change: the order
// stays available to everyone else. Rejecting the same order twice is a
// no-op.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for courier rejections.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the rejection.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ValidateCourierRejection(cmd.Actor().ID()); err != nil {
		return err
	}

	rejected, err := orderRepo.HasRejection(ctx, cmd.OrderID(), cmd.Actor().ID())
	if err != nil {
		return err
	}
	if rejected {
		return uow.Commit(ctx)
	}

	rejection, err := order.NewRejection(cmd.OrderID(), cmd.Actor().ID())
	if err != nil {
		return err
	}

	if err = orderRepo.AddRejection(ctx, rejection); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"farmaya/internal/core/domain/model/order"
)

// AcknowledgeRejectionCommandHandler marks a rejected prescription as
// acknowledged by the customer.
type AcknowledgeRejectionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcknowledgeRejectionCommandHandler creates a handler for rejection
// acknowledgments.
func NewAcknowledgeRejectionCommandHandler(uowFactory OrderUoWFactory) AcknowledgeRejectionCommandHandler {
	return AcknowledgeRejectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgment and returns the updated order.
func (h AcknowledgeRejectionCommandHandler) Handle(ctx context.Context, cmd AcknowledgeRejectionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetByItem(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = o.AcknowledgeRejection(cmd.Actor(), cmd.ItemID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

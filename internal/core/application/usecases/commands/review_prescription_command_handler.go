package commands

import (
	"context"

	"farmaya/internal/core/domain/model/order"
)

// ReviewPrescriptionCommandHandler applies a pharmacy's prescription review
// to the owning order aggregate.
type ReviewPrescriptionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReviewPrescriptionCommandHandler creates a handler for prescription
// reviews.
func NewReviewPrescriptionCommandHandler(uowFactory OrderUoWFactory) ReviewPrescriptionCommandHandler {
	return ReviewPrescriptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review and returns the updated order.
func (h ReviewPrescriptionCommandHandler) Handle(ctx context.Context, cmd ReviewPrescriptionCommand) (*order.Order, error) {
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

	if err = o.ReviewPrescription(cmd.Actor(), cmd.ItemID(), cmd.Status(), cmd.Notes()); err != nil {
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

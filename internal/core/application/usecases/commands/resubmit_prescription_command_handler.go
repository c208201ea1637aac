package commands

import (
	"context"
	"log/slog"

	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/core/ports"
)

// ResubmitPrescriptionCommandHandler replaces a rejected prescription file
// on a line item and resets its review to pending. The replaced file is
// removed from the store only after the transaction commits; a dangling
// file on failure is preferable to a lost one.
type ResubmitPrescriptionCommandHandler struct {
	uowFactory OrderUoWFactory
	fileStore  ports.FileStore
}

// NewResubmitPrescriptionCommandHandler creates a handler for prescription
// resubmissions.
func NewResubmitPrescriptionCommandHandler(
	uowFactory OrderUoWFactory,
	fileStore ports.FileStore,
) ResubmitPrescriptionCommandHandler {
	return ResubmitPrescriptionCommandHandler{
		uowFactory: uowFactory,
		fileStore:  fileStore,
	}
}

// Handle processes the resubmission and returns the updated order.
func (h ResubmitPrescriptionCommandHandler) Handle(ctx context.Context, cmd ResubmitPrescriptionCommand) (*order.Order, error) {
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

	replacedFile, err := o.ResubmitPrescription(cmd.Actor(), cmd.ItemID(), cmd.File())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if replacedFile != "" {
		if deleteErr := h.fileStore.Delete(ctx, replacedFile); deleteErr != nil {
			slog.Warn("failed to delete replaced prescription file",
				"file", replacedFile,
				"error", deleteErr)
		}
	}

	return o, nil
}

package commands

import (
	"context"

	"farmaya/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies a status transition to an order.
// Authorization and the acceptance gate live in the aggregate; the handler
// only orchestrates load, mutate, persist.
//
// When the restock policy is enabled, moving an order into Rechazado or
// Cancelado returns the reserved stock to the catalog within the same
// transaction. The policy is off by default, matching the long-standing
// behavior of the system; see the configuration.
type ChangeOrderStatusCommandHandler struct {
	uowFactory      OrderProductUoWFactory
	restockOnCancel bool
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderProductUoWFactory, restockOnCancel bool) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:      uowFactory,
		restockOnCancel: restockOnCancel,
	}
}

// Handle processes the status change and returns the updated order.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	wasTerminal := o.Status() == order.Rechazado || o.Status() == order.Cancelado
	wasAssigned := o.Courier() != nil

	if err = o.ChangeStatus(cmd.Actor(), cmd.Target(), cmd.Reason()); err != nil {
		return nil, err
	}

	// An implicit claim (courier setting en_camino on an unassigned order)
	// must go through the conditional claim update so that concurrent
	// couriers cannot both win; the loser gets a conflict instead of
	// overwriting the assignment.
	if !wasAssigned && o.Courier() != nil {
		if err = orderRepo.Claim(ctx, o.ID(), *o.Courier()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	nowTerminal := o.Status() == order.Rechazado || o.Status() == order.Cancelado
	if h.restockOnCancel && nowTerminal && !wasTerminal {
		productRepo := uow.ProductRepository()
		for _, item := range o.Items() {
			if err = productRepo.RestoreStock(ctx, item.ProductID(), item.Quantity()); err != nil {
				return nil, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

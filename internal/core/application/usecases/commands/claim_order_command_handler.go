package commands

import (
	"context"
	"fmt"

	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/errs"
)

// ClaimOrderCommandHandler assigns a courier to an unassigned order. The
// aggregate validates claimability in memory, but the authoritative check is
// the conditional update in the repository: two couriers racing for the same
// order are serialized by the database, and the loser receives a conflict.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for courier claims.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim and returns the updated order.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
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

	rejected, err := orderRepo.HasRejection(ctx, cmd.OrderID(), cmd.Actor().ID())
	if err != nil {
		return nil, err
	}
	if rejected {
		return nil, errs.NewNotAllowedErrorWithCause("claim order",
			fmt.Errorf("courier already rejected order %s", cmd.OrderID()))
	}

	if err = o.Claim(cmd.Actor().ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Claim(ctx, cmd.OrderID(), cmd.Actor().ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

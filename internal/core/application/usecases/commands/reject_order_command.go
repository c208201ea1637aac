package commands

import (
	"errors"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/errs"
	"farmaya/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a courier declining an available order so it
// no longer appears in their feed.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a rejection command. Only couriers may
// reject.
func NewRejectOrderCommand(orderID kernel.UUID, actor order.Actor) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return RejectOrderCommand{}, err
	}
	if actor.Role() != account.Repartidor {
		return RejectOrderCommand{}, errs.NewNotAllowedError("reject order")
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the rejected order's identifier.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the rejecting courier actor.
func (c RejectOrderCommand) Actor() order.Actor {
	return c.actor
}

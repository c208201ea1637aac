package commands

import (
	"errors"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/errs"
	"farmaya/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a courier claiming an unassigned order for
// delivery.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a claim command. Only couriers may claim.
func NewClaimOrderCommand(orderID kernel.UUID, actor order.Actor) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return ClaimOrderCommand{}, err
	}
	if actor.Role() != account.Repartidor {
		return ClaimOrderCommand{}, errs.NewNotAllowedError("claim order")
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the claimed order's identifier.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the claiming courier actor.
func (c ClaimOrderCommand) Actor() order.Actor {
	return c.actor
}

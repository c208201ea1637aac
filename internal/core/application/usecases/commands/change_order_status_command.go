package commands

import (
	"errors"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request by a pharmacy or courier to
// move an order to a new status, optionally carrying a non-delivery reason.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	target  order.Status
	reason  string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status change command. The target
// status is validated here so unknown values are rejected before any load,
// independent of the actor.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	actor order.Actor,
	target order.Status,
	reason string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		target.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	cmd.target = target
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the requesting actor.
func (c ChangeOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// Reason returns the optional non-delivery reason.
func (c ChangeOrderStatusCommand) Reason() string {
	return c.reason
}

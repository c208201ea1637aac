package commands

import (
	"errors"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/guard"
)

var ErrAcknowledgeRejectionCommandIsNotConstructed = errors.New(
	"AcknowledgeRejectionCommand must be created via NewAcknowledgeRejectionCommand constructor",
)

// AcknowledgeRejectionCommand represents a customer accepting a rejected
// prescription as final, unblocking order acceptance for the remaining
// line items.
type AcknowledgeRejectionCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	actor  order.Actor

	guard guard.ConstructorGuard
}

// NewAcknowledgeRejectionCommand creates an acknowledgment command.
func NewAcknowledgeRejectionCommand(
	itemID kernel.UUID,
	actor order.Actor,
) (AcknowledgeRejectionCommand, error) {
	cmd := AcknowledgeRejectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		actor.Validate(),
	); err != nil {
		return AcknowledgeRejectionCommand{}, err
	}

	cmd.itemID = itemID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcknowledgeRejectionCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgeRejectionCommandIsNotConstructed)
}

// ItemID returns the line item's identifier.
func (c AcknowledgeRejectionCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Actor returns the acknowledging customer actor.
func (c AcknowledgeRejectionCommand) Actor() order.Actor {
	return c.actor
}

package commands

import (
	"errors"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/errs"
	"farmaya/internal/pkg/guard"
)

var ErrResubmitPrescriptionCommandIsNotConstructed = errors.New(
	"ResubmitPrescriptionCommand must be created via NewResubmitPrescriptionCommand constructor",
)

// ResubmitPrescriptionCommand represents a customer replacing a rejected
// prescription file with a new one.
type ResubmitPrescriptionCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	actor  order.Actor
	file   string

	guard guard.ConstructorGuard
}

// NewResubmitPrescriptionCommand creates a resubmission command. The file
// reference is required; uploads are handled before the command is built.
func NewResubmitPrescriptionCommand(
	itemID kernel.UUID,
	actor order.Actor,
	file string,
) (ResubmitPrescriptionCommand, error) {
	cmd := ResubmitPrescriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		actor.Validate(),
	); err != nil {
		return ResubmitPrescriptionCommand{}, err
	}
	if file == "" {
		return ResubmitPrescriptionCommand{}, errs.NewValueIsRequiredError("receta")
	}

	cmd.itemID = itemID
	cmd.actor = actor
	cmd.file = file
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResubmitPrescriptionCommand) Validate() error {
	return c.guard.Validate(ErrResubmitPrescriptionCommandIsNotConstructed)
}

// ItemID returns the line item's identifier.
func (c ResubmitPrescriptionCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Actor returns the resubmitting customer actor.
func (c ResubmitPrescriptionCommand) Actor() order.Actor {
	return c.actor
}

// File returns the new prescription file reference.
func (c ResubmitPrescriptionCommand) File() string {
	return c.file
}

package commands

import (
	"errors"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/errs"
	"farmaya/internal/pkg/guard"
)

var ErrReviewPrescriptionCommandIsNotConstructed = errors.New(
	"ReviewPrescriptionCommand must be created via NewReviewPrescriptionCommand constructor",
)

// ReviewPrescriptionCommand represents a pharmacy's review decision on one
// line item's prescription: pending, approved or rejected, with optional
// review notes.
type ReviewPrescriptionCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	actor  order.Actor
	status order.PrescriptionStatus
	notes  string

	guard guard.ConstructorGuard
}

// NewReviewPrescriptionCommand creates a review command. Only reviewable
// prescription statuses are accepted; no_requerida is derived from the
// product and can never be set by review.
func NewReviewPrescriptionCommand(
	itemID kernel.UUID,
	actor order.Actor,
	status order.PrescriptionStatus,
	notes string,
) (ReviewPrescriptionCommand, error) {
	cmd := ReviewPrescriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		actor.Validate(),
		status.Validate(),
	); err != nil {
		return ReviewPrescriptionCommand{}, err
	}
	if !status.IsReviewable() {
		return ReviewPrescriptionCommand{}, errs.NewValueIsInvalidError("estado_receta")
	}

	cmd.itemID = itemID
	cmd.actor = actor
	cmd.status = status
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewPrescriptionCommand) Validate() error {
	return c.guard.Validate(ErrReviewPrescriptionCommandIsNotConstructed)
}

// ItemID returns the reviewed line item's identifier.
func (c ReviewPrescriptionCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Actor returns the reviewing pharmacy actor.
func (c ReviewPrescriptionCommand) Actor() order.Actor {
	return c.actor
}

// Status returns the requested prescription status.
func (c ReviewPrescriptionCommand) Status() order.PrescriptionStatus {
	return c.status
}

// Notes returns the optional review notes.
func (c ReviewPrescriptionCommand) Notes() string {
	return c.notes
}

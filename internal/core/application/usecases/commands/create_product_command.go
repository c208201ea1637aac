package commands

import (
	"errors"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/errs"
	"farmaya/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a pharmacy publishing a new catalog item.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	actor                order.Actor
	name                 string
	presentation         string
	description          string
	priceCents           int64
	stock                int
	requiresPrescription bool

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a catalog publication command. Only
// pharmacies may publish; field validation happens in the product
// constructor.
func NewCreateProductCommand(
	actor order.Actor,
	name, presentation, description string,
	priceCents int64,
	stock int,
	requiresPrescription bool,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.Validate(); err != nil {
		return CreateProductCommand{}, err
	}
	if actor.Role() != account.Farmacia {
		return CreateProductCommand{}, errs.NewNotAllowedError("publish product")
	}

	cmd.actor = actor
	cmd.name = name
	cmd.presentation = presentation
	cmd.description = description
	cmd.priceCents = priceCents
	cmd.stock = stock
	cmd.requiresPrescription = requiresPrescription
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Actor returns the publishing pharmacy actor.
func (c CreateProductCommand) Actor() order.Actor {
	return c.actor
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Presentation returns the dosage form description.
func (c CreateProductCommand) Presentation() string {
	return c.presentation
}

// Description returns the free-text description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// PriceCents returns the unit price in cents.
func (c CreateProductCommand) PriceCents() int64 {
	return c.priceCents
}

// Stock returns the initial stock count.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

// RequiresPrescription reports whether the product needs a prescription.
func (c CreateProductCommand) RequiresPrescription() bool {
	return c.requiresPrescription
}

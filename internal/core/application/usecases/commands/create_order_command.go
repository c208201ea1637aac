package commands

import (
	"errors"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/errs"
	"farmaya/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderItem is one requested product line at checkout. PrescriptionFile
// is the reference of an already-stored upload, empty when the caller did not
// attach one; whether a file is mandatory depends on the product and is
// decided inside the transaction.
type CreateOrderItem struct {
	ProductID        kernel.UUID
	Quantity         int
	PrescriptionFile string
}

// CreateOrderCommand represents a customer checkout: one pharmacy, a delivery
// address, a payment method and at least one product line.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, pharmacyID,
//	    "Av. Siempreviva 742", "efectivo", items)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	pharmacyID      kernel.UUID
	deliveryAddress string
	paymentMethod   string
	items           []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. Validates that the
// customer and pharmacy IDs are valid, the delivery address is not blank, at
// least one item is present and every quantity is positive.
func NewCreateOrderCommand(
	customerID, pharmacyID kernel.UUID,
	deliveryAddress, paymentMethod string,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPharmacyID(pharmacyID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.paymentMethod = paymentMethod
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PharmacyID returns the selling pharmacy's identifier.
func (c CreateOrderCommand) PharmacyID() kernel.UUID {
	return c.pharmacyID
}

// DeliveryAddress returns the delivery destination.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PaymentMethod returns the requested payment method, possibly empty.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Items returns the requested product lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.pharmacyID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("direccion_entrega")
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("detalles")
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsOutOfRangeError("cantidad", item.Quantity, 1, 999)
		}
	}
	c.items = items
	return nil
}

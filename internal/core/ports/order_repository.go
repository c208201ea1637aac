// Package ports defines the persistence and storage contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// the courier rejection records that hang off them.
type OrderRepository interface {
	// Add persists a new order aggregate with all its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// line items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by ID with its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItem retrieves the order aggregate owning the given line item.
	GetByItem(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// Claim atomically assigns a courier to an unassigned claimable order and
	// moves it to EnCamino. This is the single conditional write resolving the
	// race between concurrent claimants: the update only touches rows where no
	// courier is assigned and the status is still claimable, and a zero
	// affected-row count is reported as a ConflictError.
	Claim(ctx context.Context, orderID, courierID kernel.UUID) error

	// AddRejection inserts a courier rejection record. The (order, courier)
	// pair is unique; a duplicate insert is reported as a ConflictError.
	AddRejection(ctx context.Context, rejection order.Rejection) error

	// HasRejection reports whether the courier already rejected the order.
	HasRejection(ctx context.Context, orderID, courierID kernel.UUID) (bool, error)
}

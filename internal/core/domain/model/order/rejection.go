package order

import (
	"errors"
	"time"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/guard"
)

// ErrRejectionIsNotConstructed is returned when a Rejection was not created
// through NewRejection or RestoreRejection.
var ErrRejectionIsNotConstructed = errors.New("Rejection must be created via NewRejection or RestoreRejection")

// Rejection records that a courier permanently passed on an order. The
// (order, courier) pair is unique: a courier rejects an order at most once,
// and rejected orders never reappear in that courier's availability feed.
// Rejections are immutable once created.
type Rejection struct {
	orderID   kernel.UUID
	courierID kernel.UUID
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewRejection creates a rejection record for an (order, courier) pair.
func NewRejection(orderID, courierID kernel.UUID) (Rejection, error) {
	if err := orderID.Validate(); err != nil {
		return Rejection{}, err
	}
	if err := courierID.Validate(); err != nil {
		return Rejection{}, err
	}

	return Rejection{
		orderID:   orderID,
		courierID: courierID,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreRejection reconstructs a rejection record from persistence.
func RestoreRejection(orderID, courierID kernel.UUID, createdAt time.Time) (Rejection, error) {
	r, err := NewRejection(orderID, courierID)
	if err != nil {
		return Rejection{}, err
	}
	r.createdAt = createdAt
	return r, nil
}

// Validate ensures the Rejection was created through a constructor.
func (r Rejection) Validate() error {
	return r.guard.Validate(ErrRejectionIsNotConstructed)
}

// OrderID returns the rejected order's identifier.
func (r Rejection) OrderID() kernel.UUID {
	return r.orderID
}

// CourierID returns the rejecting courier's identifier.
func (r Rejection) CourierID() kernel.UUID {
	return r.courierID
}

// CreatedAt returns when the courier rejected the order.
func (r Rejection) CreatedAt() time.Time {
	return r.createdAt
}

package queries

import (
	"errors"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery retrieves the orders assigned to one courier,
// including completed deliveries.
type GetCourierOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a query for a courier's deliveries.
func NewGetCourierOrdersQuery(courierID kernel.UUID) (GetCourierOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierOrdersQuery{}, err
	}
	return GetCourierOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the courier's identifier.
func (q GetCourierOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

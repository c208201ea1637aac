package queries

import (
	"errors"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the courier feed: accepted or in
// preparation orders with no assigned courier, minus the orders this courier
// has already declined.
type GetAvailableOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a feed query for one courier.
func NewGetAvailableOrdersQuery(courierID kernel.UUID) (GetAvailableOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetAvailableOrdersQuery{}, err
	}
	return GetAvailableOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier viewing the feed.
func (q GetAvailableOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

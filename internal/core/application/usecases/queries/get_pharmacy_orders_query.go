package queries

import (
	"errors"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/guard"
)

var ErrGetPharmacyOrdersQueryIsNotConstructed = errors.New(
	"GetPharmacyOrdersQuery must be created via NewGetPharmacyOrdersQuery constructor",
)

// GetPharmacyOrdersQuery retrieves the orders addressed to one pharmacy,
// optionally narrowed to a single status for dashboard tabs.
type GetPharmacyOrdersQuery struct {
	pharmacyID kernel.UUID
	status     *order.Status

	guard guard.ConstructorGuard
}

// NewGetPharmacyOrdersQuery creates a query for a pharmacy's incoming
// orders. A nil status means no filtering.
func NewGetPharmacyOrdersQuery(pharmacyID kernel.UUID, status *order.Status) (GetPharmacyOrdersQuery, error) {
	if err := pharmacyID.Validate(); err != nil {
		return GetPharmacyOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetPharmacyOrdersQuery{}, err
		}
	}
	return GetPharmacyOrdersQuery{
		pharmacyID: pharmacyID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPharmacyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPharmacyOrdersQueryIsNotConstructed)
}

// PharmacyID returns the pharmacy's identifier.
func (q GetPharmacyOrdersQuery) PharmacyID() kernel.UUID {
	return q.pharmacyID
}

// Status returns the optional status filter.
func (q GetPharmacyOrdersQuery) Status() *order.Status {
	return q.status
}

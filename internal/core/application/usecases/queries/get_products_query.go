package queries

import (
	"errors"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the catalog, either the whole marketplace or a
// single pharmacy's shelf.
type GetProductsQuery struct {
	pharmacyID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a catalog query. A nil pharmacy ID returns the
// whole catalog.
func NewGetProductsQuery(pharmacyID *kernel.UUID) (GetProductsQuery, error) {
	if pharmacyID != nil {
		if err := pharmacyID.Validate(); err != nil {
			return GetProductsQuery{}, err
		}
	}
	return GetProductsQuery{
		pharmacyID: pharmacyID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// PharmacyID returns the optional pharmacy filter.
func (q GetProductsQuery) PharmacyID() *kernel.UUID {
	return q.pharmacyID
}

// GetProductsQueryResponse represents one catalog item with the owning
// pharmacy's name for marketplace listings.
type GetProductsQueryResponse struct {
	ID                   kernel.UUID
	PharmacyID           kernel.UUID
	PharmacyName         string
	Name                 string
	Presentation         string
	Description          string
	PriceCents           int64
	Stock                int
	RequiresPrescription bool
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPharmacyOrdersQueryHandler serves a pharmacy's incoming orders from the
// shared order projection.
type GetPharmacyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPharmacyOrdersQueryHandler creates a handler for pharmacy order
// queries.
func NewGetPharmacyOrdersQueryHandler(db *gorm.DB) GetPharmacyOrdersQueryHandler {
	return GetPharmacyOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the pharmacy's orders, newest first,
// optionally filtered by status.
func (h GetPharmacyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPharmacyOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if status := query.Status(); status != nil {
		return loadOrders(ctx, h.db, "o.pharmacy_id = ? AND o.status = ?",
			query.PharmacyID().Bytes(), int(*status))
	}
	return loadOrders(ctx, h.db, "o.pharmacy_id = ?", query.PharmacyID().Bytes())
}

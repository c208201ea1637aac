package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler serves a courier's assigned deliveries from
// the shared order projection.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier delivery
// queries.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the courier's deliveries, newest
// first.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrders(ctx, h.db, "o.courier_id = ?", query.CourierID().Bytes())
}

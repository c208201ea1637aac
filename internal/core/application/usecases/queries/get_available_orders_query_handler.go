package queries

import (
	"context"

	"gorm.io/gorm"

	"farmaya/internal/core/domain/model/order"
)

// GetAvailableOrdersQueryHandler serves the courier feed. Rejections filter
// per courier: an order one courier declined stays visible to everyone else.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for courier feed
// queries.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query and returns claimable orders for the courier.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrders(ctx, h.db, `
		o.courier_id IS NULL
		AND o.status IN (?, ?)
		AND NOT EXISTS (
			SELECT 1 FROM order_rejections r
			WHERE r.order_id = o.id AND r.courier_id = ?
		)`,
		int(order.Aceptado), int(order.EnPreparacion), query.CourierID().Bytes())
}

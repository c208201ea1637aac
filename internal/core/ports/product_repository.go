package ports

import (
	"context"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog items.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, p *product.Product) error

	// Get retrieves a product by ID.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// DecrementStock conditionally subtracts quantity from the product's
	// stock. The update only applies while enough stock remains
	// (stock >= quantity); otherwise a ValueIsInvalidError is returned and
	// nothing changes. Runs inside the surrounding order-creation
	// transaction.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error

	// RestoreStock adds quantity back to the product's stock. Used by the
	// optional restock-on-cancellation policy.
	RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error
}

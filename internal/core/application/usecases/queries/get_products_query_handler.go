package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmaya/internal/core/domain/model/kernel"
)

// GetProductsQueryHandler serves catalog listings with direct SQL.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query and returns catalog items sorted by name.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			p.id,
			p.pharmacy_id,
			f.name,
			p.name,
			p.presentation,
			p.description,
			p.price_cents,
			p.stock,
			p.requires_prescription
		FROM products p
		JOIN users f ON f.id = p.pharmacy_id
	`
	args := make([]any, 0, 1)
	if pharmacyID := query.PharmacyID(); pharmacyID != nil {
		sql += ` WHERE p.pharmacy_id = ?`
		args = append(args, pharmacyID.Bytes())
	}
	sql += ` ORDER BY p.name, p.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetProductsQueryResponse, 0)

	for rows.Next() {
		var item GetProductsQueryResponse
		var id, pharmacyID uuid.UUID

		err = rows.Scan(
			&id,
			&pharmacyID,
			&item.PharmacyName,
			&item.Name,
			&item.Presentation,
			&item.Description,
			&item.PriceCents,
			&item.Stock,
			&item.RequiresPrescription,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.PharmacyID, err = kernel.UUIDFromBytes(pharmacyID[:]); err != nil {
			return nil, err
		}

		products = append(products, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// Package productrepo persists the pharmacy catalog.
package productrepo

import (
	"github.com/google/uuid"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for catalog items.
type ProductDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PharmacyID           uuid.UUID `gorm:"type:uuid;index"`
	Name                 string
	Presentation         string
	Description          string
	PriceCents           int64
	Stock                int
	RequiresPrescription bool
}

// TableName overrides GORM's default naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:                   p.ID().Bytes(),
		PharmacyID:           p.PharmacyID().Bytes(),
		Name:                 p.Name(),
		Presentation:         p.Presentation(),
		Description:          p.Description(),
		PriceCents:           p.PriceCents(),
		Stock:                p.Stock(),
		RequiresPrescription: p.RequiresPrescription(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	pharmacyID, err := kernel.UUIDFromBytes(dto.PharmacyID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, pharmacyID,
		dto.Name,
		dto.Presentation,
		dto.Description,
		dto.PriceCents,
		dto.Stock,
		dto.RequiresPrescription,
	)
}

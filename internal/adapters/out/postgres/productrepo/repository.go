package productrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/product"
	"farmaya/internal/pkg/errs"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new catalog item.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a catalog item by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("producto", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DecrementStock conditionally reserves stock. The guard in the WHERE clause
// makes concurrent checkouts safe: the decrement only happens when enough
// stock remains, and a zero affected-row count means the reservation lost.
func (r *GormProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cantidad",
			fmt.Errorf("cannot reserve %d units", quantity))
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND stock >= ?", id.Bytes(), quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("not enough stock to reserve %d units of product %s", quantity, id))
	}

	return nil
}

// RestoreStock returns previously reserved stock to the catalog.
func (r *GormProductRepository) RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cantidad",
			fmt.Errorf("cannot restore %d units", quantity))
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("producto", id.String())
	}

	return nil
}

package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
	"farmaya/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with all its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. Line items are written with an upsert
// keyed by item ID; items are never removed after checkout, so no delete
// pass is needed.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	items := dto.Items
	dto.Items = nil

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pedido", aggregate.ID().String())
	}

	if len(items) > 0 {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&items).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pedido", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByItem retrieves the order owning the given line item.
func (r *GormOrderRepository) GetByItem(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var itemDTO OrderItemDTO
	err := r.db.WithContext(ctx).First(&itemDTO, "id = ?", itemID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("detalle", itemID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(itemDTO.OrderID[:])
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, orderID)
}

// Claim atomically assigns a courier to an unassigned claimable order. The
// WHERE clause is the concurrency control: only one of several racing
// couriers matches the row, everyone else affects zero rows and gets a
// conflict.
func (r *GormOrderRepository) Claim(ctx context.Context, orderID, courierID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND courier_id IS NULL AND status IN (?, ?)",
			orderID.Bytes(), int(order.Aceptado), int(order.EnPreparacion)).
		Updates(map[string]any{
			"courier_id": courierID.Bytes(),
			"status":     int(order.EnCamino),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("pedido", order.ErrOrderAlreadyClaimed)
	}

	return nil
}

// AddRejection inserts a courier rejection record. A duplicate (order,
// courier) pair is reported as a conflict.
func (r *GormOrderRepository) AddRejection(ctx context.Context, rejection order.Rejection) error {
	if err := rejection.Validate(); err != nil {
		return err
	}

	dto := rejectionFromDomain(rejection)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("rechazo")
		}
		return err
	}

	return nil
}

// HasRejection reports whether the courier already rejected the order.
func (r *GormOrderRepository) HasRejection(ctx context.Context, orderID, courierID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}
	if err := courierID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&RejectionDTO{}).
		Where("order_id = ? AND courier_id = ?", orderID.Bytes(), courierID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

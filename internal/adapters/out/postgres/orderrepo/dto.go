// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Indexed by customer, pharmacy and courier for the read-side
// projections.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;index"`
	PharmacyID        uuid.UUID  `gorm:"type:uuid;index"`
	CourierID         *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress   string
	PaymentMethod     string
	Status            int `gorm:"index"`
	NonDeliveryReason string
	CreatedAt         time.Time
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line with its prescription review state.
type OrderItemDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID `gorm:"type:uuid;index"`
	ProductID             uuid.UUID `gorm:"type:uuid"`
	ProductName           string
	Quantity              int
	UnitPriceCents        int64
	RequiresPrescription  bool
	PrescriptionStatus    int
	PrescriptionFile      string
	ReviewNotes           string
	RejectionAcknowledged bool
}

// TableName overrides GORM's default naming convention.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// RejectionDTO represents one courier's decision to decline an order. The
// composite primary key enforces at most one record per (order, courier)
// pair.
type RejectionDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (RejectionDTO) TableName() string {
	return "order_rejections"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:                    item.ID().Bytes(),
			OrderID:               aggregate.ID().Bytes(),
			ProductID:             item.ProductID().Bytes(),
			ProductName:           item.ProductName(),
			Quantity:              item.Quantity(),
			UnitPriceCents:        item.UnitPriceCents(),
			RequiresPrescription:  item.RequiresPrescription(),
			PrescriptionStatus:    int(item.PrescriptionStatus()),
			PrescriptionFile:      item.PrescriptionFile(),
			ReviewNotes:           item.ReviewNotes(),
			RejectionAcknowledged: item.RejectionAcknowledged(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		PharmacyID:        aggregate.PharmacyID().Bytes(),
		CourierID:         courierID,
		DeliveryAddress:   aggregate.DeliveryAddress(),
		PaymentMethod:     aggregate.PaymentMethod(),
		Status:            int(aggregate.Status()),
		NonDeliveryReason: aggregate.NonDeliveryReason(),
		CreatedAt:         aggregate.CreatedAt(),
		Items:             items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	pharmacyID, err := kernel.UUIDFromBytes(dto.PharmacyID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, pharmacyID,
		courierID,
		dto.DeliveryAddress,
		dto.PaymentMethod,
		dto.CreatedAt,
		order.Status(dto.Status),
		dto.NonDeliveryReason,
		items,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(
		id, productID,
		dto.ProductName,
		dto.Quantity,
		dto.UnitPriceCents,
		dto.RequiresPrescription,
		order.PrescriptionStatus(dto.PrescriptionStatus),
		dto.PrescriptionFile,
		dto.ReviewNotes,
		dto.RejectionAcknowledged,
	)
}

func rejectionFromDomain(rejection order.Rejection) RejectionDTO {
	return RejectionDTO{
		OrderID:   rejection.OrderID().Bytes(),
		CourierID: rejection.CourierID().Bytes(),
		CreatedAt: rejection.CreatedAt(),
	}
}

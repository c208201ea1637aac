// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of CQRS with raw SQL against the database,
// bypassing the aggregate repositories for read performance.
package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
)

// OrderItemView is the read model for one order line.
type OrderItemView struct {
	ID                    kernel.UUID
	ProductID             kernel.UUID
	ProductName           string
	Quantity              int
	UnitPriceCents        int64
	RequiresPrescription  bool
	PrescriptionStatus    order.PrescriptionStatus
	PrescriptionFile      string
	ReviewNotes           string
	RejectionAcknowledged bool
}

// OrderView is the read model for a full order, including the names of both
// parties and the derived acceptance flag the pharmacy dashboard renders.
type OrderView struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	CustomerName      string
	PharmacyID        kernel.UUID
	PharmacyName      string
	CourierID         *kernel.UUID
	DeliveryAddress   string
	PaymentMethod     string
	Status            order.Status
	NonDeliveryReason string
	CreatedAt         time.Time
	TotalCents        int64
	CanAccept         bool
	Items             []OrderItemView
}

// loadOrders runs the shared order projection with a caller-supplied filter.
// The filter is always a compile-time constant; user input only travels
// through args.
func loadOrders(ctx context.Context, db *gorm.DB, filter string, args ...any) ([]OrderView, error) {
	orders := make([]OrderView, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			c.name,
			o.pharmacy_id,
			f.name,
			o.courier_id,
			o.delivery_address,
			o.payment_method,
			o.status,
			o.non_delivery_reason,
			o.created_at
		FROM orders o
		JOIN users c ON c.id = o.customer_id
		JOIN users f ON f.id = o.pharmacy_id
		WHERE `+filter+`
		ORDER BY o.created_at DESC, o.id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view OrderView
		var id, customerID, pharmacyID uuid.UUID
		var courierID uuid.NullUUID
		var status int

		err = rows.Scan(
			&id,
			&customerID,
			&view.CustomerName,
			&pharmacyID,
			&view.PharmacyName,
			&courierID,
			&view.DeliveryAddress,
			&view.PaymentMethod,
			&status,
			&view.NonDeliveryReason,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if view.PharmacyID, err = kernel.UUIDFromBytes(pharmacyID[:]); err != nil {
			return nil, err
		}
		if courierID.Valid {
			courier, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			view.CourierID = &courier
		}
		view.Status = order.Status(status)

		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err = loadOrderItems(ctx, db, &orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func loadOrderItems(ctx context.Context, db *gorm.DB, view *OrderView) error {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			product_name,
			quantity,
			unit_price_cents,
			requires_prescription,
			prescription_status,
			prescription_file,
			review_notes,
			rejection_acknowledged
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, view.ID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	view.Items = make([]OrderItemView, 0)
	view.TotalCents = 0
	blocked := false

	for rows.Next() {
		var item OrderItemView
		var id, productID uuid.UUID
		var prescriptionStatus int

		err = rows.Scan(
			&id,
			&productID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPriceCents,
			&item.RequiresPrescription,
			&prescriptionStatus,
			&item.PrescriptionFile,
			&item.ReviewNotes,
			&item.RejectionAcknowledged,
		)
		if err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return err
		}
		item.PrescriptionStatus = order.PrescriptionStatus(prescriptionStatus)

		if item.RequiresPrescription {
			if item.PrescriptionStatus == order.PrescriptionPending {
				blocked = true
			}
			if item.PrescriptionStatus == order.PrescriptionRejected && !item.RejectionAcknowledged {
				blocked = true
			}
		}

		view.TotalCents += item.UnitPriceCents * int64(item.Quantity)
		view.Items = append(view.Items, item)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	view.CanAccept = view.Status == order.Pendiente && !blocked
	return nil
}

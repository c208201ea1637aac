package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrPendingPrescriptions blocks acceptance while prescription reviews are
	// outstanding.
	ErrPendingPrescriptions = errors.New(
		"order cannot be accepted until all required prescriptions are approved")

	// ErrUnresolvedRejections blocks acceptance while the customer has not
	// decided what to do about a rejected prescription.
	ErrUnresolvedRejections = errors.New(
		"order cannot be accepted until the customer responds to the rejected prescriptions")

	// ErrOrderAlreadyClaimed signals that a courier claim lost the race or the
	// order was already assigned.
	ErrOrderAlreadyClaimed = errors.New("order is already assigned to a courier")

	// ErrOrderNotClaimable signals a courier action on an order outside the
	// claimable statuses.
	ErrOrderNotClaimable = errors.New("order is not available for couriers")
)

// DefaultPaymentMethod is used when checkout does not specify one.
const DefaultPaymentMethod = "efectivo"

// Order is the aggregate root of the purchase workflow: one customer's
// request against one pharmacy, with its line items, optionally assigned to a
// courier for delivery.
//
// Order maintains these invariants:
//   - Delivery address is non-blank and there is at least one line item
//   - Status transitions follow the (role, current, target) authority table
//   - Transition to Aceptado passes the two-clause prescription gate
//   - Courier is assigned if and only if status is EnCamino, Entregado or
//     NoEntregado
//
// All mutations go through methods that take an Actor; the aggregate decides
// both authorization and state validity.
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	pharmacyID        kernel.UUID
	courierID         *kernel.UUID
	deliveryAddress   string
	paymentMethod     string
	createdAt         time.Time
	status            Status
	nonDeliveryReason string
	items             []*LineItem

	isConstructed bool
}

// NewOrder creates an order at customer checkout, in Pendiente status with no
// courier assigned. The payment method defaults to DefaultPaymentMethod when
// blank.
func NewOrder(
	id, customerID, pharmacyID kernel.UUID,
	deliveryAddress, paymentMethod string,
	items []*LineItem,
) (*Order, error) {
	o := &Order{
		status:        Pendiente,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPharmacyID(pharmacyID),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.paymentMethod = strings.TrimSpace(paymentMethod)
	if o.paymentMethod == "" {
		o.paymentMethod = DefaultPaymentMethod
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including courier
// assignment and terminal states. The courier/status consistency invariant is
// re-validated so corrupt rows are rejected at the boundary.
func RestoreOrder(
	id, customerID, pharmacyID kernel.UUID,
	courierID *kernel.UUID,
	deliveryAddress, paymentMethod string,
	createdAt time.Time,
	status Status,
	nonDeliveryReason string,
	items []*LineItem,
) (*Order, error) {
	o, err := NewOrder(id, customerID, pharmacyID, deliveryAddress, paymentMethod, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
	}

	o.courierID = courierID
	o.createdAt = createdAt
	o.status = status
	o.nonDeliveryReason = nonDeliveryReason
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PharmacyID returns the selling pharmacy's identifier.
func (o *Order) PharmacyID() kernel.UUID {
	return o.pharmacyID
}

// Courier returns the assigned courier's ID, or nil if unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PaymentMethod returns the chosen payment method.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// NonDeliveryReason returns the courier's free-text reason for a failed
// delivery, empty unless the order is NoEntregado.
func (o *Order) NonDeliveryReason() string {
	return o.nonDeliveryReason
}

// Items returns the order's line items.
func (o *Order) Items() []*LineItem {
	return o.items
}

// Item finds a line item by its identifier.
func (o *Order) Item(itemID kernel.UUID) (*LineItem, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("detalleId", itemID.String())
}

// CanAccept reports whether the two-clause acceptance gate currently passes:
// no required prescription is pending review and no rejection awaits a
// customer decision.
func (o *Order) CanAccept() bool {
	for _, item := range o.items {
		if item.BlocksAcceptance() {
			return false
		}
	}
	return true
}

// ChangeStatus transitions the order to the target status on behalf of an
// actor.
//
// Authorization and guards:
//   - The (role, current, target) pair must be allowed by the transition
//     authority table; pharmacies must own the order's pharmacy side and
//     couriers must be (or become) the assigned courier.
//   - Transition to Aceptado is blocked while any required prescription is
//     pending (ErrPendingPrescriptions) or rejected without customer
//     acknowledgment (ErrUnresolvedRejections).
//   - The courier/status consistency invariant is enforced: delivery statuses
//     require an assigned courier, all others forbid one.
//   - reason is captured only when the target is NoEntregado.
func (o *Order) ChangeStatus(actor Actor, target Status, reason string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	// Unknown target values are invalid input regardless of who asks.
	if err := target.Validate(); err != nil {
		return err
	}

	switch actor.Role() {
	case account.Farmacia:
		if !actor.ID().IsEqual(o.pharmacyID) {
			return errs.NewNotAllowedError("update order status")
		}
		if !mayTransition(account.Farmacia, o.status, target) {
			return errs.NewNotAllowedErrorWithCause("update order status",
				fmt.Errorf("pharmacy cannot move order from %s to %s", o.status, target))
		}
		if target == Aceptado {
			if err := o.validateAcceptanceGate(); err != nil {
				return err
			}
		}

	case account.Repartidor:
		if !mayTransition(account.Repartidor, o.status, target) {
			return errs.NewNotAllowedErrorWithCause("update order status",
				fmt.Errorf("courier cannot move order from %s to %s", o.status, target))
		}
		if o.courierID != nil && !o.courierID.IsEqual(actor.ID()) {
			return errs.NewNotAllowedError("order is assigned to another courier")
		}
		if o.courierID == nil {
			// Setting en_camino on an unassigned order claims it implicitly.
			courierID := actor.ID()
			o.courierID = &courierID
		}

	default:
		return errs.NewNotAllowedError("update order status")
	}

	if target != NoEntregado {
		reason = ""
	}

	if err := target.ValidateCanHaveCourier(o.courierID != nil); err != nil {
		return err
	}

	o.status = target
	o.nonDeliveryReason = strings.TrimSpace(reason)
	return nil
}

// ReviewPrescription lets the owning pharmacy move a line item's prescription
// between pending, approved and rejected, attaching optional review notes.
// A rejection always resets the customer's acknowledgment.
func (o *Order) ReviewPrescription(actor Actor, itemID kernel.UUID, status PrescriptionStatus, notes string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != account.Farmacia || !actor.ID().IsEqual(o.pharmacyID) {
		return errs.NewNotAllowedError("review prescription")
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	return item.review(status, notes)
}

// ResubmitPrescription lets the owning customer replace a rejected
// prescription with a new upload. The replaced file reference is returned so
// the caller can remove it from storage once the change is persisted.
func (o *Order) ResubmitPrescription(actor Actor, itemID kernel.UUID, newFile string) (replacedFile string, err error) {
	if err = actor.Validate(); err != nil {
		return "", err
	}
	if actor.Role() != account.Cliente || !actor.ID().IsEqual(o.customerID) {
		return "", errs.NewNotAllowedError("resubmit prescription")
	}

	item, err := o.Item(itemID)
	if err != nil {
		return "", err
	}
	return item.resubmit(newFile)
}

// AcknowledgeRejection lets the owning customer accept a rejected
// prescription, unblocking order acceptance without a new upload.
func (o *Order) AcknowledgeRejection(actor Actor, itemID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != account.Cliente || !actor.ID().IsEqual(o.customerID) {
		return errs.NewNotAllowedError("acknowledge rejected prescription")
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	return item.acknowledgeRejection()
}

// Claim assigns a courier to an available order and forces the status to
// EnCamino in the same mutation. The order must be claimable (Aceptado or
// EnPreparacion) and unassigned. The true race between concurrent claimants
// is resolved by the repository's conditional update; this method enforces
// the same preconditions on the loaded aggregate.
func (o *Order) Claim(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return errs.NewConflictErrorWithCause("claim order", ErrOrderAlreadyClaimed)
	}
	if !o.status.IsClaimable() {
		return errs.NewValueIsInvalidErrorWithCause("estado",
			fmt.Errorf("%w: status is %s", ErrOrderNotClaimable, o.status))
	}

	o.courierID = &courierID
	o.status = EnCamino
	return nil
}

// ValidateCourierRejection checks that a courier may record a rejection for
// this order: the order must still be claimable and unassigned. The
// per-courier duplicate check happens against the rejection store.
func (o *Order) ValidateCourierRejection(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return errs.NewConflictErrorWithCause("reject order", ErrOrderAlreadyClaimed)
	}
	if !o.status.IsClaimable() {
		return errs.NewValueIsInvalidErrorWithCause("estado",
			fmt.Errorf("%w: status is %s", ErrOrderNotClaimable, o.status))
	}
	return nil
}

// TotalCents returns the order total across all line items.
func (o *Order) TotalCents() int64 {
	var total int64
	for _, item := range o.items {
		total += item.UnitPriceCents() * int64(item.Quantity())
	}
	return total
}

func (o *Order) validateAcceptanceGate() error {
	for _, item := range o.items {
		if item.RequiresPrescription() && item.PrescriptionStatus() == PrescriptionPending {
			return errs.NewValueIsInvalidErrorWithCause("estado", ErrPendingPrescriptions)
		}
	}
	for _, item := range o.items {
		if item.RequiresPrescription() &&
			item.PrescriptionStatus() == PrescriptionRejected &&
			!item.RejectionAcknowledged() {
			return errs.NewValueIsInvalidErrorWithCause("estado", ErrUnresolvedRejections)
		}
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.pharmacyID = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("direccion_entrega")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []*LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("detalles")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

package order

import (
	"errors"
	"fmt"
	"strings"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/errs"
	"farmaya/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through NewLineItem or RestoreLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")
)

// LineItem is one product line within an order. Unit price and the
// requires-prescription flag are snapshots taken from the product at order
// time and never change afterwards, so catalog edits do not retroactively
// alter existing orders.
//
// Invariant: requiresPrescription == false implies the prescription status is
// PrescriptionNotRequired and the file reference, review notes and
// acknowledgment flag are cleared. The invariant is enforced by normalize()
// at every construction and restore site, not by a hidden persistence hook.
type LineItem struct {
	id                    kernel.UUID
	productID             kernel.UUID
	productName           string
	quantity              int
	unitPriceCents        int64
	requiresPrescription  bool
	prescriptionStatus    PrescriptionStatus
	prescriptionFile      string
	reviewNotes           string
	rejectionAcknowledged bool

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item at checkout time. If the product requires a
// prescription, a stored file reference is mandatory and the initial
// prescription status is PrescriptionPending; otherwise the status is fixed
// at PrescriptionNotRequired.
func NewLineItem(
	id, productID kernel.UUID,
	productName string,
	quantity int,
	unitPriceCents int64,
	requiresPrescription bool,
	prescriptionFile string,
) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPriceCents(unitPriceCents),
	); err != nil {
		return nil, err
	}

	item.requiresPrescription = requiresPrescription
	if requiresPrescription {
		if strings.TrimSpace(prescriptionFile) == "" {
			return nil, errs.NewValueIsRequiredErrorWithCause("receta",
				fmt.Errorf("product %q requires a prescription file", item.productName))
		}
		item.prescriptionStatus = PrescriptionPending
		item.prescriptionFile = prescriptionFile
	} else {
		item.prescriptionStatus = PrescriptionNotRequired
	}

	item.normalize()
	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence. The prescription
// invariant is re-applied on every restore, so rows written before a product
// stopped requiring a prescription collapse to a consistent state.
func RestoreLineItem(
	id, productID kernel.UUID,
	productName string,
	quantity int,
	unitPriceCents int64,
	requiresPrescription bool,
	prescriptionStatus PrescriptionStatus,
	prescriptionFile string,
	reviewNotes string,
	rejectionAcknowledged bool,
) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPriceCents(unitPriceCents),
		prescriptionStatus.Validate(),
	); err != nil {
		return nil, err
	}

	item.requiresPrescription = requiresPrescription
	item.prescriptionStatus = prescriptionStatus
	item.prescriptionFile = prescriptionFile
	item.reviewNotes = reviewNotes
	item.rejectionAcknowledged = rejectionAcknowledged

	item.normalize()
	return item, nil
}

// normalize enforces the hard prescription invariant. Called at every
// construction and mutation site.
func (li *LineItem) normalize() {
	if !li.requiresPrescription {
		li.prescriptionStatus = PrescriptionNotRequired
		li.prescriptionFile = ""
		li.reviewNotes = ""
		li.rejectionAcknowledged = false
		return
	}
	if li.prescriptionStatus == PrescriptionNotRequired {
		li.prescriptionStatus = PrescriptionPending
	}
}

// Validate ensures the LineItem instance was properly constructed.
func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// ProductID returns the referenced product's identifier.
func (li *LineItem) ProductID() kernel.UUID {
	return li.productID
}

// ProductName returns the product name snapshot taken at order time.
func (li *LineItem) ProductName() string {
	return li.productName
}

// Quantity returns the ordered unit count.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// UnitPriceCents returns the unit price snapshot taken at order time.
func (li *LineItem) UnitPriceCents() int64 {
	return li.unitPriceCents
}

// RequiresPrescription reports whether this line requires an approved
// prescription before the order can be accepted.
func (li *LineItem) RequiresPrescription() bool {
	return li.requiresPrescription
}

// PrescriptionStatus returns the current prescription review state.
func (li *LineItem) PrescriptionStatus() PrescriptionStatus {
	return li.prescriptionStatus
}

// PrescriptionFile returns the stored prescription file reference, empty if
// none.
func (li *LineItem) PrescriptionFile() string {
	return li.prescriptionFile
}

// ReviewNotes returns the pharmacy's review notes, possibly empty.
func (li *LineItem) ReviewNotes() string {
	return li.reviewNotes
}

// RejectionAcknowledged reports whether the customer accepted a rejection and
// wants the order processed without resubmitting this item's prescription.
func (li *LineItem) RejectionAcknowledged() bool {
	return li.rejectionAcknowledged
}

// BlocksAcceptance reports whether this line currently blocks the pharmacy
// from accepting the order: either a review is still pending or a rejection
// has not been acknowledged by the customer.
func (li *LineItem) BlocksAcceptance() bool {
	if !li.requiresPrescription {
		return false
	}
	if li.prescriptionStatus == PrescriptionPending {
		return true
	}
	return li.prescriptionStatus == PrescriptionRejected && !li.rejectionAcknowledged
}

// review applies a pharmacy review decision. A fresh rejection always resets
// the acknowledgment flag: every rejection requires a new customer decision.
func (li *LineItem) review(status PrescriptionStatus, notes string) error {
	if !li.requiresPrescription {
		return errs.NewValueIsInvalidErrorWithCause("receta",
			fmt.Errorf("product %q does not require a prescription", li.productName))
	}
	if !status.IsReviewable() {
		return errs.NewValueIsInvalidErrorWithCause("estado_receta",
			fmt.Errorf("%s is not a reviewable prescription status", status.String()))
	}

	li.prescriptionStatus = status
	li.reviewNotes = strings.TrimSpace(notes)
	if status == PrescriptionRejected {
		li.rejectionAcknowledged = false
	}
	li.normalize()
	return nil
}

// resubmit replaces a rejected prescription with a newly uploaded file and
// returns the replaced file reference so the caller can delete it from
// storage after the change is persisted.
func (li *LineItem) resubmit(newFile string) (replacedFile string, err error) {
	if !li.requiresPrescription {
		return "", errs.NewValueIsInvalidErrorWithCause("receta",
			fmt.Errorf("product %q does not require a prescription", li.productName))
	}
	if li.prescriptionStatus != PrescriptionRejected {
		return "", errs.NewValueIsInvalidErrorWithCause("receta",
			fmt.Errorf("only rejected prescriptions can be resubmitted, current status is %s",
				li.prescriptionStatus.String()))
	}
	if strings.TrimSpace(newFile) == "" {
		return "", errs.NewValueIsRequiredError("receta")
	}

	replacedFile = li.prescriptionFile
	li.prescriptionFile = newFile
	li.prescriptionStatus = PrescriptionPending
	li.reviewNotes = ""
	li.rejectionAcknowledged = false
	li.normalize()
	return replacedFile, nil
}

// acknowledgeRejection marks a rejected prescription as accepted by the
// customer without changing the review status.
func (li *LineItem) acknowledgeRejection() error {
	if !li.requiresPrescription {
		return errs.NewValueIsInvalidErrorWithCause("receta",
			fmt.Errorf("product %q does not require a prescription", li.productName))
	}
	if li.prescriptionStatus != PrescriptionRejected {
		return errs.NewValueIsInvalidErrorWithCause("receta",
			fmt.Errorf("only rejected prescriptions can be acknowledged, current status is %s",
				li.prescriptionStatus.String()))
	}

	li.rejectionAcknowledged = true
	return nil
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.productID = id
	return nil
}

func (li *LineItem) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("producto")
	}
	li.productName = name
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cantidad",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPriceCents(priceCents int64) error {
	if priceCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("precio_unitario",
			fmt.Errorf("%d is not a valid price", priceCents))
	}
	li.unitPriceCents = priceCents
	return nil
}

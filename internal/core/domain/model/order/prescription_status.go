package order

import (
	"fmt"

	"farmaya/internal/pkg/errs"
)

// PrescriptionStatus represents the per-line-item approval state of an
// uploaded prescription document.
//
// Lifecycle:
//
//	PrescriptionNotRequired            (product does not require a prescription)
//	PrescriptionPending ──> PrescriptionApproved
//	        ▲    │
//	        │    └──> PrescriptionRejected ──(customer resubmits)──┘
//
// A rejected prescription blocks order acceptance until the customer either
// resubmits a new document or acknowledges the rejection.
type PrescriptionStatus int

const (
	// UnknownPrescriptionStatus represents an invalid or undefined value.
	UnknownPrescriptionStatus PrescriptionStatus = iota

	// PrescriptionNotRequired is the fixed state for line items whose product
	// does not require a prescription.
	PrescriptionNotRequired

	// PrescriptionPending means the document awaits pharmacy review.
	PrescriptionPending

	// PrescriptionApproved means the pharmacy approved the document.
	PrescriptionApproved

	// PrescriptionRejected means the pharmacy rejected the document.
	PrescriptionRejected
)

func getPrescriptionStatusStrings() map[PrescriptionStatus]string {
	return map[PrescriptionStatus]string{
		UnknownPrescriptionStatus: "unknown",
		PrescriptionNotRequired:   "no_requerida",
		PrescriptionPending:       "pendiente",
		PrescriptionApproved:      "aprobada",
		PrescriptionRejected:      "rechazada",
	}
}

func getValidPrescriptionStatusStrings() map[PrescriptionStatus]string {
	//nolint:exhaustive // UnknownPrescriptionStatus is intentionally excluded
	return map[PrescriptionStatus]string{
		PrescriptionNotRequired: "no_requerida",
		PrescriptionPending:     "pendiente",
		PrescriptionApproved:    "aprobada",
		PrescriptionRejected:    "rechazada",
	}
}

// PrescriptionStatusFromString parses the wire representation of a
// prescription status.
func PrescriptionStatusFromString(s string) (PrescriptionStatus, error) {
	for status, str := range getValidPrescriptionStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownPrescriptionStatus, errs.NewValueIsInvalidErrorWithCause(
		"estado_receta", fmt.Errorf("%q is not a valid prescription status", s))
}

// Validate checks if the PrescriptionStatus value is valid.
func (s PrescriptionStatus) Validate() error {
	if _, ok := getValidPrescriptionStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"prescription status is invalid",
			fmt.Errorf("%d is not a valid prescription status", s))
	}
	return nil
}

// String returns the wire name of the prescription status.
// Returns "unknown" for invalid values.
func (s PrescriptionStatus) String() string {
	if str, ok := getPrescriptionStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsReviewable reports whether a pharmacy may set this status on a line item
// during review. Pharmacies move prescriptions between pending, approved and
// rejected; they never set not-required, which is derived from the product.
func (s PrescriptionStatus) IsReviewable() bool {
	return s == PrescriptionPending || s == PrescriptionApproved || s == PrescriptionRejected
}

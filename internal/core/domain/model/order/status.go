package order

import (
	"fmt"

	"farmaya/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pendiente ──> Aceptado ──> EnPreparacion ──> EnCamino ──┬──> Entregado
//	    │             │                                     └──> NoEntregado
//	    └─────────────┴──> Rechazado / Cancelado
//
// Entregado, NoEntregado, Rechazado and Cancelado are terminal.
// The string form of a Status is its wire value used by the HTTP API and the
// database, so the enum is defined once and consumed everywhere
// (aggregate, repositories, API layer).
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pendiente is the initial status after customer checkout. The pharmacy
	// reviews prescriptions while the order sits here.
	Pendiente

	// Aceptado indicates the pharmacy accepted the order. Acceptance is gated
	// on the prescription workflow: no pending reviews and no unacknowledged
	// rejections.
	Aceptado

	// Rechazado indicates the pharmacy turned the order down. Terminal.
	Rechazado

	// EnPreparacion indicates the pharmacy is preparing the order.
	EnPreparacion

	// EnCamino indicates a courier claimed the order and is delivering it.
	EnCamino

	// Entregado indicates successful delivery. Terminal.
	Entregado

	// NoEntregado indicates the courier could not deliver, optionally with a
	// free-text reason. Terminal.
	NoEntregado

	// Cancelado indicates the order was cancelled before fulfillment. Terminal.
	Cancelado
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pendiente:     "pendiente",
		Aceptado:      "aceptado",
		Rechazado:     "rechazado",
		EnPreparacion: "en_preparacion",
		EnCamino:      "en_camino",
		Entregado:     "entregado",
		NoEntregado:   "no_entregado",
		Cancelado:     "cancelado",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pendiente:     "pendiente",
		Aceptado:      "aceptado",
		Rechazado:     "rechazado",
		EnPreparacion: "en_preparacion",
		EnCamino:      "en_camino",
		Entregado:     "entregado",
		NoEntregado:   "no_entregado",
		Cancelado:     "cancelado",
	}
}

// StatusFromString parses the wire representation of a status.
// Unknown target values are rejected as invalid input, independent of actor.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"estado", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pendiente", "aceptado", ...).
// Returns "unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are expected from this
// status in the normal workflow.
func (s Status) IsTerminal() bool {
	switch s {
	case Entregado, NoEntregado, Rechazado, Cancelado:
		return true
	default:
		return false
	}
}

// RequiresCourier reports whether orders in this status must have a courier
// assigned. The courier reference and the delivery statuses move together:
// a courier is set if and only if the order is EnCamino, Entregado or
// NoEntregado.
func (s Status) RequiresCourier() bool {
	switch s {
	case EnCamino, Entregado, NoEntregado:
		return true
	default:
		return false
	}
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment: courier assigned ⇔ status requires a courier.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && !s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// IsClaimable reports whether a courier may claim or reject an order in this
// status. Only accepted orders and orders in preparation enter the courier
// availability feed.
func (s Status) IsClaimable() bool {
	return s == Aceptado || s == EnPreparacion
}

package account

import (
	"fmt"

	"farmaya/internal/pkg/errs"
)

// Role identifies which of the three marketplace actors a user is.
// Every authorization decision in the order workflow branches on the
// combination of role and ownership, so the role is part of the domain
// model rather than an API concern.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Cliente is a customer who places orders against pharmacies.
	Cliente

	// Farmacia is a pharmacy that owns products and approves orders
	// and prescriptions.
	Farmacia

	// Repartidor is a courier who claims and fulfills accepted orders.
	Repartidor
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Cliente:     "cliente",
		Farmacia:    "farmacia",
		Repartidor:  "repartidor",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Cliente:    "cliente",
		Farmacia:   "farmacia",
		Repartidor: "repartidor",
	}
}

// RoleFromString parses the wire representation of a role.
// Returns an error for any string that is not a known role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"tipo_usuario", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: Cliente, Farmacia, Repartidor.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role ("cliente", "farmacia",
// "repartidor"), or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

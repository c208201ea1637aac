package commands

import (
	"errors"
	"strings"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/pkg/errs"
	"farmaya/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

const minPasswordLength = 6

// RegisterUserCommand represents a new account registration for any of the
// three marketplace roles.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email     string
	name      string
	phone     string
	address   string
	role      account.Role
	password  string
	latitude  *float64
	longitude *float64

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command. The password is
// carried in plain text and hashed by the handler; coordinates are only
// meaningful for pharmacies and are ignored for other roles.
func NewRegisterUserCommand(
	email, name, phone, address string,
	role account.Role,
	password string,
	latitude, longitude *float64,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	var passwordErr error
	switch {
	case password == "":
		passwordErr = errs.NewValueIsRequiredError("password")
	case len(password) < minPasswordLength:
		passwordErr = errs.NewValueIsOutOfRangeError("password", len(password), minPasswordLength, 128)
	}

	if err := errors.Join(
		role.Validate(),
		passwordErr,
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.email = strings.TrimSpace(email)
	cmd.name = strings.TrimSpace(name)
	cmd.phone = strings.TrimSpace(phone)
	cmd.address = strings.TrimSpace(address)
	cmd.role = role
	cmd.password = password
	cmd.latitude = latitude
	cmd.longitude = longitude
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the registration email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Phone returns the optional phone number.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Address returns the optional street address.
func (c RegisterUserCommand) Address() string {
	return c.address
}

// Role returns the requested marketplace role.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

// Password returns the plain-text password to be hashed.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Coordinates returns the optional pharmacy map coordinates.
func (c RegisterUserCommand) Coordinates() (latitude, longitude *float64) {
	return c.latitude, c.longitude
}

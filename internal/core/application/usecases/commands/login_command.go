package commands

import (
	"errors"
	"strings"

	"farmaya/internal/pkg/errs"
	"farmaya/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a credential check that opens a new session.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command.
func NewLoginCommand(email, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	email = strings.TrimSpace(email)

	var emailErr error
	if email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}

	if err := errors.Join(emailErr, passwordErr); err != nil {
		return LoginCommand{}, err
	}

	cmd.email = email
	cmd.password = password
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the login email.
func (c LoginCommand) Email() string {
	return c.email
}

// Password returns the plain-text password to verify.
func (c LoginCommand) Password() string {
	return c.password
}

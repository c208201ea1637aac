package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/errs"
)

// LoginCommandHandler verifies credentials and opens a new session. A wrong
// password and an unknown email produce the same error, so the endpoint never
// reveals whether an address is registered.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewLoginCommandHandler creates a handler for logins.
func NewLoginCommandHandler(uowFactory UserUoWFactory) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the credentials and returns the account with a fresh
// session token.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (*account.User, string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	user, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, "", errs.NewValueIsInvalidError("credenciales")
		}
		return nil, "", err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(cmd.Password())); err != nil {
		return nil, "", errs.NewValueIsInvalidError("credenciales")
	}

	token := kernel.NewUUID().String()
	if err = userRepo.AddSession(ctx, token, user.ID()); err != nil {
		return nil, "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, "", err
	}

	return user, token, nil
}

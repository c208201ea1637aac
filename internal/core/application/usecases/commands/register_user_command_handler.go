package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
)

// RegisterUserCommandHandler creates a new account and opens its first
// session. Passwords are stored as bcrypt hashes; the session token is an
// opaque random value the client presents as a bearer token.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for registrations.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the user and returns the created account together with a
// fresh session token.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*account.User, string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := account.NewUser(
		kernel.NewUUID(),
		cmd.Email(),
		cmd.Name(),
		cmd.Phone(),
		cmd.Address(),
		cmd.Role(),
		string(hash),
	)
	if err != nil {
		return nil, "", err
	}

	if latitude, longitude := cmd.Coordinates(); cmd.Role() == account.Farmacia &&
		latitude != nil && longitude != nil {
		if err = user.SetCoordinates(*latitude, *longitude); err != nil {
			return nil, "", err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	if err = userRepo.Add(ctx, user); err != nil {
		return nil, "", err
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

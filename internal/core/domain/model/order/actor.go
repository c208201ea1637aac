package order

import (
	"errors"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor")

// Actor carries the identity and role of the user requesting an operation on
// an order. Every mutating aggregate method takes an Actor and authorizes the
// request against the role transition table and the order's ownership
// references, keeping all authorization decisions inside the aggregate
// instead of scattered across HTTP handlers.
type Actor struct {
	id   kernel.UUID
	role account.Role

	guard guard.ConstructorGuard
}

// NewActor creates a validated Actor from a user identity and role.
func NewActor(id kernel.UUID, role account.Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ActorForUser is a convenience constructor building an Actor from a User.
func ActorForUser(user *account.User) (Actor, error) {
	if err := user.Validate(); err != nil {
		return Actor{}, err
	}
	return NewActor(user.ID(), user.Role())
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the acting user's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the acting user's marketplace role.
func (a Actor) Role() account.Role {
	return a.role
}

package ports

import (
	"context"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for registered accounts and
// their opaque session tokens.
type UserRepository interface {
	// Add persists a new user. A duplicate email is reported as a
	// ConflictError.
	Add(ctx context.Context, user *account.User) error

	// Get retrieves a user by ID.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by normalized email address.
	GetByEmail(ctx context.Context, email string) (*account.User, error)

	// AddSession stores an opaque bearer token for the user.
	AddSession(ctx context.Context, token string, userID kernel.UUID) error

	// GetBySession resolves a bearer token to its user. A token past its
	// configured lifetime resolves to ObjectNotFoundError even before the
	// cleanup job removes the row.
	GetBySession(ctx context.Context, token string) (*account.User, error)
}

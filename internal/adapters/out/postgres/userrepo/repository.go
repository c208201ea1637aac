package userrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/errs"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db         *gorm.DB
	sessionTTL time.Duration
}

// NewGormUserRepository creates a new GORM user repository. Session lookups
// through this instance do not expire tokens.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// NewGormUserRepositoryWithSessionTTL creates a user repository whose session
// lookups reject tokens older than ttl. The cleanup job removes expired rows
// later; the lookup filter keeps them from resolving in the meantime.
func NewGormUserRepositoryWithSessionTTL(db *gorm.DB, ttl time.Duration) *GormUserRepository {
	return &GormUserRepository{db: db, sessionTTL: ttl}
}

// Add saves a new account. A duplicate email is reported as a conflict.
func (r *GormUserRepository) Add(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("email")
		}
		return err
	}

	return nil
}

// Get retrieves an account by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("usuario", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by normalized email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("usuario", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddSession stores an opaque bearer token for the user.
func (r *GormUserRepository) AddSession(ctx context.Context, token string, userID kernel.UUID) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	if err := userID.Validate(); err != nil {
		return err
	}

	dto := SessionDTO{
		Token:     token,
		UserID:    userID.Bytes(),
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetBySession resolves a bearer token to its account. Tokens past the
// configured session TTL are treated as unknown.
func (r *GormUserRepository) GetBySession(ctx context.Context, token string) (*account.User, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	query := r.db.WithContext(ctx).Where("token = ?", token)
	if r.sessionTTL > 0 {
		query = query.Where("created_at >= ?", time.Now().UTC().Add(-r.sessionTTL))
	}

	var session SessionDTO
	if err := query.First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sesion", token)
		}
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(session.UserID[:])
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, userID)
}

package account

import (
	"errors"
	"strings"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/errs"
	"farmaya/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User represents any registered account: a customer, a pharmacy, or a
// courier. Identity and token issuance live outside the core; the domain only
// needs the identifier, the role, and the profile fields used in responses.
//
// Pharmacies optionally carry map coordinates so the client can render them
// on the pharmacy map.
type User struct {
	id           kernel.UUID
	email        string
	name         string
	phone        string
	address      string
	role         Role
	passwordHash string
	latitude     *float64
	longitude    *float64

	guard guard.ConstructorGuard
}

// NewUser creates a validated User. Email, name, role and password hash are
// mandatory; phone and address are optional profile fields.
func NewUser(id kernel.UUID, email, name, phone, address string, role Role, passwordHash string) (*User, error) {
	user := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setName(name),
		user.setRole(role),
		user.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	user.phone = strings.TrimSpace(phone)
	user.address = strings.TrimSpace(address)
	return user, nil
}

// RestoreUser reconstructs a User from persistence without re-running
// registration-time validation beyond structural checks.
func RestoreUser(
	id kernel.UUID,
	email, name, phone, address string,
	role Role,
	passwordHash string,
	latitude, longitude *float64,
) (*User, error) {
	user, err := NewUser(id, email, name, phone, address, role, passwordHash)
	if err != nil {
		return nil, err
	}

	user.latitude = latitude
	user.longitude = longitude
	return user, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// SetCoordinates attaches map coordinates to a pharmacy profile.
// Only pharmacies are shown on the map, so other roles are rejected.
func (u *User) SetCoordinates(latitude, longitude float64) error {
	if u.role != Farmacia {
		return errs.NewNotAllowedError("only pharmacies have map coordinates")
	}
	u.latitude = &latitude
	u.longitude = &longitude
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Phone returns the user's phone number, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// Address returns the user's street address, possibly empty.
func (u *User) Address() string {
	return u.address
}

// Role returns the user's marketplace role.
func (u *User) Role() Role {
	return u.role
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Coordinates returns the pharmacy's map coordinates.
// Both values are nil for non-pharmacy users or pharmacies without location.
func (u *User) Coordinates() (latitude, longitude *float64) {
	return u.latitude, u.longitude
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = strings.ToLower(email)
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("nombre")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

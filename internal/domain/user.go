package domain

import (
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// User-specific validation errors
var (
	// ErrUserIDEmpty is returned when a user ID is empty or nil.
	ErrUserIDEmpty = errors.New("user ID cannot be empty")

	// ErrUserEmailEmpty is returned when a user's email is empty.
	ErrUserEmailEmpty = errors.New("user email cannot be empty")

	// ErrPasswordTooShort is returned when a plaintext password is below the
	// minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 12 characters")
)

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 12

// User represents a registered account. The HashedPassword field holds the
// bcrypt hash; the plaintext Password field is transient and never persisted.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, only populated during registration
	HashedPassword string    `json:"-"`
	ActivePairID   *uuid.UUID `json:"active_pair_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given email and plaintext password.
// The password is validated here but hashed by the auth service before the
// user is stored. Returns an error if validation fails.
func NewUser(email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrUserIDEmpty
	}

	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}

	// Skip the length check when only the hash is present (e.g. a user
	// loaded from the store).
	if u.Password != "" && len(u.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

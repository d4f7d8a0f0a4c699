package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/lpetrosyan/vocab-api/internal/domain"
)

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on success or an error on mismatch.
	Compare(hashedPassword, password string) error
}

// PasswordHasher defines the interface for hashing plaintext passwords.
type PasswordHasher interface {
	// Hash returns the bcrypt hash of the given plaintext password.
	// Returns ErrPasswordTooShort if the password is below the minimum
	// length.
	Hash(password string) (string, error)
}

// BcryptVerifier implements PasswordVerifier and PasswordHasher using bcrypt.
type BcryptVerifier struct {
	cost int
}

var (
	_ PasswordVerifier = (*BcryptVerifier)(nil)
	_ PasswordHasher   = (*BcryptVerifier)(nil)
)

// NewBcryptVerifier creates a BcryptVerifier with the given cost. A cost of
// zero falls back to the bcrypt default.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Hash implements the PasswordHasher interface using bcrypt.
func (v *BcryptVerifier) Hash(password string) (string, error) {
	if len(password) < domain.MinPasswordLength {
		return "", fmt.Errorf("%w: need at least %d characters", ErrPasswordTooShort, domain.MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

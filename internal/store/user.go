package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user. The user's HashedPassword must already be
	// set; plaintext passwords never reach the store.
	// Returns ErrEmailExists if the email is already registered.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// SetActivePair updates the user's active language pair.
	// Returns ErrUserNotFound if the user does not exist.
	SetActivePair(ctx context.Context, userID, pairID uuid.UUID) error

	// WithTx returns a UserStore bound to the given transaction.
	WithTx(tx *sql.Tx) UserStore
}

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
)

// PairStore defines the interface for language pair persistence.
type PairStore interface {
	// Create saves a new language pair.
	Create(ctx context.Context, pair *domain.LanguagePair) error

	// GetByID retrieves a pair by ID.
	// Returns ErrPairNotFound if the pair does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LanguagePair, error)

	// ListByUser returns all pairs belonging to the user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LanguagePair, error)

	// WithTx returns a PairStore bound to the given transaction.
	WithTx(tx *sql.Tx) PairStore
}

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
)

// SetStore defines the interface for vocabulary set persistence.
type SetStore interface {
	// Create saves a new vocabulary set.
	Create(ctx context.Context, set *domain.VocabularySet) error

	// GetByID retrieves a set by ID scoped to its owner.
	// Returns ErrSetNotFound if the set does not exist.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularySet, error)

	// ListByPair returns the pair's sets ordered by name.
	ListByPair(ctx context.Context, userID, pairID uuid.UUID) ([]*domain.VocabularySet, error)

	// Delete removes a set. Words keep existing but lose their set
	// membership (SET NULL in the schema).
	// Returns ErrSetNotFound if the set does not exist.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// WithTx returns a SetStore bound to the given transaction.
	WithTx(tx *sql.Tx) SetStore
}

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
)

// WordStore defines the interface for word persistence.
type WordStore interface {
	// Create saves a new word.
	// Returns ErrWordExists if the pair already contains the word text.
	Create(ctx context.Context, word *domain.Word) error

	// GetByID retrieves a word by ID scoped to its owner.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Word, error)

	// FindByText retrieves a word by its exact target-language text within a
	// pair. Returns ErrWordNotFound if no such word exists. Approximate
	// lookup over search variants is service-layer logic built on ListByPair.
	FindByText(ctx context.Context, userID, pairID uuid.UUID, text string) (*domain.Word, error)

	// ListByPair returns the pair's words ordered by creation time, scoped to
	// setID when non-nil. Limit 0 means no limit.
	ListByPair(ctx context.Context, userID, pairID uuid.UUID, setID *uuid.UUID, limit, offset int) ([]*domain.Word, error)

	// Update overwrites the word's mutable content fields (translation,
	// synonyms, grammar metadata, note, examples, set membership).
	// Returns ErrWordNotFound if the word does not exist.
	Update(ctx context.Context, word *domain.Word) error

	// Delete removes a word. Associated cards and reviews go with it via
	// ON DELETE CASCADE. Returns ErrWordNotFound if the word does not exist.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// WithTx returns a WordStore bound to the given transaction.
	WithTx(tx *sql.Tx) WordStore
}

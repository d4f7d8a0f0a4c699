package store

import (
	"context"
	"database/sql"

	"github.com/lpetrosyan/vocab-api/internal/domain"
)

// ReviewStore defines the interface for the append-only review log.
type ReviewStore interface {
	// Create records one answer attempt.
	Create(ctx context.Context, review *domain.Review) error

	// WithTx returns a ReviewStore bound to the given transaction.
	WithTx(tx *sql.Tx) ReviewStore
}

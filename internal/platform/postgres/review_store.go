package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

// ReviewStore implements store.ReviewStore on PostgreSQL.
type ReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewReviewStore creates a PostgreSQL implementation of store.ReviewStore.
func NewReviewStore(db store.DBTX, logger *slog.Logger) *ReviewStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_store")),
	}
}

// Verify interface compliance at compile time
var _ store.ReviewStore = (*ReviewStore)(nil)

// Create implements store.ReviewStore.Create.
func (s *ReviewStore) Create(ctx context.Context, review *domain.Review) error {
	if err := review.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO reviews (id, card_id, user_id, answer, is_correct,
		                     response_time_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		review.ID, review.CardID, review.UserID, review.Answer,
		review.IsCorrect, review.ResponseTimeMs, review.CreatedAt)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// WithTx implements store.ReviewStore.WithTx.
func (s *ReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return &ReviewStore{db: tx, logger: s.logger}
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

// SetStore implements store.SetStore on PostgreSQL.
type SetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSetStore creates a PostgreSQL implementation of store.SetStore.
func NewSetStore(db store.DBTX, logger *slog.Logger) *SetStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SetStore{
		db:     db,
		logger: logger.With(slog.String("component", "set_store")),
	}
}

// Verify interface compliance at compile time
var _ store.SetStore = (*SetStore)(nil)

// Create implements store.SetStore.Create.
func (s *SetStore) Create(ctx context.Context, set *domain.VocabularySet) error {
	if err := set.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO vocabulary_sets (id, user_id, pair_id, name, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		set.ID, set.UserID, set.PairID, set.Name, set.CreatedAt)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.SetStore.GetByID.
func (s *SetStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularySet, error) {
	query := `
		SELECT id, user_id, pair_id, name, created_at
		FROM vocabulary_sets
		WHERE id = $1 AND user_id = $2`

	var set domain.VocabularySet
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&set.ID, &set.UserID, &set.PairID, &set.Name, &set.CreatedAt)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrSetNotFound
		}
		return nil, mapped
	}

	return &set, nil
}

// ListByPair implements store.SetStore.ListByPair.
func (s *SetStore) ListByPair(ctx context.Context, userID, pairID uuid.UUID) ([]*domain.VocabularySet, error) {
	query := `
		SELECT id, user_id, pair_id, name, created_at
		FROM vocabulary_sets
		WHERE user_id = $1 AND pair_id = $2
		ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, userID, pairID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var sets []*domain.VocabularySet
	for rows.Next() {
		var set domain.VocabularySet
		err := rows.Scan(&set.ID, &set.UserID, &set.PairID, &set.Name, &set.CreatedAt)
		if err != nil {
			return nil, MapError(err)
		}
		sets = append(sets, &set)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return sets, nil
}

// Delete implements store.SetStore.Delete. The schema detaches the set's
// words via ON DELETE SET NULL.
func (s *SetStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM vocabulary_sets WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrSetNotFound
	}

	return nil
}

// WithTx implements store.SetStore.WithTx.
func (s *SetStore) WithTx(tx *sql.Tx) store.SetStore {
	return &SetStore{db: tx, logger: s.logger}
}

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

// PairStore implements store.PairStore on PostgreSQL.
type PairStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPairStore creates a PostgreSQL implementation of store.PairStore.
func NewPairStore(db store.DBTX, logger *slog.Logger) *PairStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PairStore{
		db:     db,
		logger: logger.With(slog.String("component", "pair_store")),
	}
}

// Verify interface compliance at compile time
var _ store.PairStore = (*PairStore)(nil)

// Create implements store.PairStore.Create.
func (s *PairStore) Create(ctx context.Context, pair *domain.LanguagePair) error {
	if err := pair.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO language_pairs (id, user_id, source_lang, target_lang, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		pair.ID, pair.UserID, pair.SourceLang, pair.TargetLang, pair.CreatedAt)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.PairStore.GetByID.
func (s *PairStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.LanguagePair, error) {
	query := `
		SELECT id, user_id, source_lang, target_lang, created_at
		FROM language_pairs
		WHERE id = $1`

	var pair domain.LanguagePair
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&pair.ID, &pair.UserID, &pair.SourceLang, &pair.TargetLang, &pair.CreatedAt)
	if err != nil {
		if mapped := MapError(err); store.IsNotFoundError(mapped) {
			return nil, store.ErrPairNotFound
		}
		return nil, MapError(err)
	}

	return &pair, nil
}

// ListByUser implements store.PairStore.ListByUser.
func (s *PairStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LanguagePair, error) {
	query := `
		SELECT id, user_id, source_lang, target_lang, created_at
		FROM language_pairs
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var pairs []*domain.LanguagePair
	for rows.Next() {
		var pair domain.LanguagePair
		if err := rows.Scan(
			&pair.ID, &pair.UserID, &pair.SourceLang, &pair.TargetLang, &pair.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		pairs = append(pairs, &pair)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return pairs, nil
}

// WithTx implements store.PairStore.WithTx.
func (s *PairStore) WithTx(tx *sql.Tx) store.PairStore {
	return &PairStore{db: tx, logger: s.logger}
}

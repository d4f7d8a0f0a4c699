package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/domain/srs"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

// CardStore implements store.CardStore on PostgreSQL.
type CardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCardStore creates a PostgreSQL implementation of store.CardStore.
func NewCardStore(db store.DBTX, logger *slog.Logger) *CardStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Verify interface compliance at compile time
var _ store.CardStore = (*CardStore)(nil)

const cardColumns = `
	c.id, c.user_id, c.word_id, c.pair_id, c.direction, c.srs_index,
	c.next_review_at, c.correct_count, c.incorrect_count, c.created_at, c.updated_at`

// dueScopeWhere filters cards to one user/pair scope, optionally narrowed to
// a vocabulary set via the words table.
const dueScopeWhere = `
	c.user_id = $1 AND c.pair_id = $2
	AND ($3::uuid IS NULL OR w.set_id = $3)`

// CreateMultiple implements store.CardStore.CreateMultiple.
func (s *CardStore) CreateMultiple(ctx context.Context, cards []*domain.Card) error {
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	query := `
		INSERT INTO cards (id, user_id, word_id, pair_id, direction, srs_index,
		                   next_review_at, correct_count, incorrect_count,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	for _, card := range cards {
		_, err := s.db.ExecContext(ctx, query,
			card.ID, card.UserID, card.WordID, card.PairID,
			card.Direction, card.SrsIndex, card.NextReviewAt,
			card.CorrectCount, card.IncorrectCount,
			card.CreatedAt, card.UpdatedAt)
		if err != nil {
			return MapError(err)
		}
	}

	return nil
}

// GetByID implements store.CardStore.GetByID.
func (s *CardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		WHERE c.id = $1`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrCardNotFound
		}
		return nil, err
	}

	return card, nil
}

// NextDue implements store.CardStore.NextDue: the earliest-overdue card in
// the scope.
func (s *CardStore) NextDue(
	ctx context.Context,
	userID, pairID uuid.UUID,
	setID *uuid.UUID,
	now time.Time,
) (*domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		JOIN words w ON w.id = c.word_id
		WHERE ` + dueScopeWhere + `
		  AND c.next_review_at <= $4
		ORDER BY c.next_review_at ASC, c.id ASC
		LIMIT 1`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, userID, pairID, setID, now))
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrCardNotFound
		}
		return nil, err
	}

	return card, nil
}

// ListDue implements store.CardStore.ListDue.
func (s *CardStore) ListDue(
	ctx context.Context,
	userID, pairID uuid.UUID,
	setID *uuid.UUID,
	now time.Time,
	limit int,
) ([]*domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		JOIN words w ON w.id = c.word_id
		WHERE ` + dueScopeWhere + `
		  AND c.next_review_at <= $4
		ORDER BY c.next_review_at ASC, c.id ASC
		LIMIT $5`

	rows, err := s.db.QueryContext(ctx, query, userID, pairID, setID, now, limit)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var cards []*domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return cards, nil
}

// Overview implements store.CardStore.Overview.
func (s *CardStore) Overview(
	ctx context.Context,
	userID, pairID uuid.UUID,
	setID *uuid.UUID,
	now time.Time,
) (*store.CardOverview, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE c.next_review_at <= $4),
			MIN(c.next_review_at)
		FROM cards c
		JOIN words w ON w.id = c.word_id
		WHERE ` + dueScopeWhere

	var (
		overview store.CardOverview
		nextAt   sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, query, userID, pairID, setID, now).Scan(
		&overview.Total, &overview.Due, &nextAt)
	if err != nil {
		return nil, MapError(err)
	}

	if nextAt.Valid {
		t := nextAt.Time
		overview.NextReviewAt = &t
	}

	return &overview, nil
}

// ApplyReview implements store.CardStore.ApplyReview. One UPDATE keyed by
// card identity carries the whole transition, which is the read-modify-write
// contract the core expects from its persistence collaborator.
func (s *CardStore) ApplyReview(ctx context.Context, cardID uuid.UUID, state srs.State, correct bool) error {
	counter := "incorrect_count"
	if correct {
		counter = "correct_count"
	}

	query := fmt.Sprintf(`
		UPDATE cards
		SET srs_index = $1,
		    next_review_at = $2,
		    %s = %s + 1,
		    updated_at = NOW()
		WHERE id = $3`, counter, counter)

	result, err := s.db.ExecContext(ctx, query, state.Index, state.NextReviewAt, cardID)
	if err != nil {
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if rows == 0 {
		return store.ErrCardNotFound
	}

	return nil
}

// WithTx implements store.CardStore.WithTx.
func (s *CardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &CardStore{db: tx, logger: s.logger}
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var card domain.Card
	err := row.Scan(
		&card.ID, &card.UserID, &card.WordID, &card.PairID,
		&card.Direction, &card.SrsIndex, &card.NextReviewAt,
		&card.CorrectCount, &card.IncorrectCount,
		&card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}
	return &card, nil
}

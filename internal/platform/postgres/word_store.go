package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

// WordStore implements store.WordStore on PostgreSQL. Synonyms and examples
// are stored as JSONB columns.
type WordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewWordStore creates a PostgreSQL implementation of store.WordStore.
func NewWordStore(db store.DBTX, logger *slog.Logger) *WordStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Verify interface compliance at compile time
var _ store.WordStore = (*WordStore)(nil)

const wordColumns = `
	id, user_id, pair_id, set_id, text, translation, synonyms,
	part_of_speech, gender, transcription, note, examples,
	created_at, updated_at`

// Create implements store.WordStore.Create.
func (s *WordStore) Create(ctx context.Context, word *domain.Word) error {
	if err := word.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	synonyms, examples, err := marshalWordJSON(word)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO words (` + wordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err = s.db.ExecContext(ctx, query,
		word.ID, word.UserID, word.PairID, word.SetID,
		word.Text, word.Translation, synonyms,
		nullable(word.PartOfSpeech), nullable(word.Gender),
		nullable(word.Transcription), nullable(word.Note), examples,
		word.CreatedAt, word.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrWordExists
		}
		return MapError(err)
	}

	return nil
}

// GetByID implements store.WordStore.GetByID.
func (s *WordStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE id = $1 AND user_id = $2`

	return s.scanWord(s.db.QueryRowContext(ctx, query, id, userID))
}

// FindByText implements store.WordStore.FindByText.
func (s *WordStore) FindByText(ctx context.Context, userID, pairID uuid.UUID, text string) (*domain.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE user_id = $1 AND pair_id = $2 AND text = $3`

	return s.scanWord(s.db.QueryRowContext(ctx, query, userID, pairID, text))
}

// ListByPair implements store.WordStore.ListByPair.
func (s *WordStore) ListByPair(
	ctx context.Context,
	userID, pairID uuid.UUID,
	setID *uuid.UUID,
	limit, offset int,
) ([]*domain.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE user_id = $1 AND pair_id = $2
		  AND ($3::uuid IS NULL OR set_id = $3)
		ORDER BY created_at ASC, id ASC`

	args := []any{userID, pairID, setID}
	if limit > 0 {
		query += ` LIMIT $4 OFFSET $5`
		args = append(args, limit, offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var words []*domain.Word
	for rows.Next() {
		word, err := scanWordRow(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return words, nil
}

// Update implements store.WordStore.Update.
func (s *WordStore) Update(ctx context.Context, word *domain.Word) error {
	if err := word.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	synonyms, examples, err := marshalWordJSON(word)
	if err != nil {
		return err
	}

	query := `
		UPDATE words
		SET translation = $1, synonyms = $2, part_of_speech = $3, gender = $4,
		    transcription = $5, note = $6, examples = $7, set_id = $8,
		    updated_at = NOW()
		WHERE id = $9 AND user_id = $10`

	result, err := s.db.ExecContext(ctx, query,
		word.Translation, synonyms,
		nullable(word.PartOfSpeech), nullable(word.Gender),
		nullable(word.Transcription), nullable(word.Note), examples,
		word.SetID, word.ID, word.UserID)
	if err != nil {
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if rows == 0 {
		return store.ErrWordNotFound
	}

	return nil
}

// Delete implements store.WordStore.Delete. Cards and reviews cascade at the
// schema level.
func (s *WordStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM words WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if rows == 0 {
		return store.ErrWordNotFound
	}

	return nil
}

// WithTx implements store.WordStore.WithTx.
func (s *WordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &WordStore{db: tx, logger: s.logger}
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *WordStore) scanWord(row *sql.Row) (*domain.Word, error) {
	word, err := scanWordRow(row)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrWordNotFound
		}
		return nil, err
	}
	return word, nil
}

func scanWordRow(row rowScanner) (*domain.Word, error) {
	var (
		word          domain.Word
		synonymsJSON  []byte
		examplesJSON  []byte
		partOfSpeech  sql.NullString
		gender        sql.NullString
		transcription sql.NullString
		note          sql.NullString
	)

	err := row.Scan(
		&word.ID, &word.UserID, &word.PairID, &word.SetID,
		&word.Text, &word.Translation, &synonymsJSON,
		&partOfSpeech, &gender, &transcription, &note, &examplesJSON,
		&word.CreatedAt, &word.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	word.PartOfSpeech = partOfSpeech.String
	word.Gender = gender.String
	word.Transcription = transcription.String
	word.Note = note.String

	if len(synonymsJSON) > 0 {
		if err := json.Unmarshal(synonymsJSON, &word.Synonyms); err != nil {
			return nil, fmt.Errorf("%w: corrupt synonyms payload: %v", store.ErrInvalidEntity, err)
		}
	}
	if len(examplesJSON) > 0 {
		if err := json.Unmarshal(examplesJSON, &word.Examples); err != nil {
			return nil, fmt.Errorf("%w: corrupt examples payload: %v", store.ErrInvalidEntity, err)
		}
	}

	return &word, nil
}

func marshalWordJSON(word *domain.Word) (synonyms, examples []byte, err error) {
	synonyms, err = json.Marshal(word.Synonyms)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: synonyms: %v", store.ErrInvalidEntity, err)
	}

	examples, err = json.Marshal(word.Examples)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: examples: %v", store.ErrInvalidEntity, err)
	}

	return synonyms, examples, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

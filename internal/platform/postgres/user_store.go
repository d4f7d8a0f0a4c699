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

// UserStore implements store.UserStore on PostgreSQL.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a PostgreSQL implementation of store.UserStore. The
// database handle must be initialized by the caller; a nil logger falls back
// to slog.Default().
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Verify interface compliance at compile time
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO users (id, email, hashed_password, active_pair_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Email, user.HashedPassword, user.ActivePairID,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrEmailExists
		}
		return MapError(err)
	}

	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, email, hashed_password, active_pair_id, created_at, updated_at
		FROM users
		WHERE id = $1`

	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, hashed_password, active_pair_id, created_at, updated_at
		FROM users
		WHERE email = $1`

	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// SetActivePair implements store.UserStore.SetActivePair.
func (s *UserStore) SetActivePair(ctx context.Context, userID, pairID uuid.UUID) error {
	query := `
		UPDATE users
		SET active_pair_id = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, pairID, userID)
	if err != nil {
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if rows == 0 {
		return store.ErrUserNotFound
	}

	return nil
}

// WithTx implements store.UserStore.WithTx.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{db: tx, logger: s.logger}
}

func (s *UserStore) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.HashedPassword, &user.ActivePairID,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if mapped := MapError(err); store.IsNotFoundError(mapped) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return &user, nil
}

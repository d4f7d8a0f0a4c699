package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/service/auth"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

func newUserService(
	t *testing.T,
	db *sql.DB,
	userStore store.UserStore,
	pairStore store.PairStore,
) *UserService {
	t.Helper()
	verifier := auth.NewBcryptVerifier(4) // MinCost keeps the tests fast
	return NewUserService(db, userStore, pairStore, verifier, verifier, nil)
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("hashes password before store", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)

		var stored *domain.User
		users := &stubUserStore{
			createFn: func(ctx context.Context, user *domain.User) error {
				stored = user
				return nil
			},
		}

		svc := newUserService(t, db, users, &stubPairStore{})
		user, err := svc.Register(context.Background(), "user@example.com", "correct horse battery")
		require.NoError(t, err)

		require.NotNil(t, stored)
		assert.Empty(t, stored.Password)
		assert.NotEmpty(t, stored.HashedPassword)
		assert.NotContains(t, stored.HashedPassword, "correct horse battery")
		assert.Equal(t, user.ID, stored.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)

		users := &stubUserStore{
			createFn: func(ctx context.Context, user *domain.User) error {
				return store.ErrEmailExists
			},
		}

		svc := newUserService(t, db, users, &stubPairStore{})
		_, err := svc.Register(context.Background(), "taken@example.com", "correct horse battery")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("rejects short password", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)

		svc := newUserService(t, db, &stubUserStore{}, &stubPairStore{})
		_, err := svc.Register(context.Background(), "user@example.com", "short")
		assert.Error(t, err)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	db, _ := newMockDB(t)
	verifier := auth.NewBcryptVerifier(4)
	hashed, err := verifier.Hash("correct horse battery")
	require.NoError(t, err)

	registered := &domain.User{
		ID:             uuid.New(),
		Email:          "user@example.com",
		HashedPassword: hashed,
	}
	users := &stubUserStore{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email == registered.Email {
				return registered, nil
			}
			return nil, store.ErrUserNotFound
		},
	}

	svc := NewUserService(db, users, &stubPairStore{}, verifier, verifier, nil)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "user@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "user@example.com", "wrong password here")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email indistinguishable from wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody@example.com", "correct horse battery")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_CreatePair(t *testing.T) {
	t.Parallel()

	t.Run("first pair becomes active", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		userID := uuid.New()
		var activated *uuid.UUID
		users := &stubUserStore{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				return &domain.User{ID: userID, Email: "user@example.com"}, nil
			},
			setActivePairFn: func(ctx context.Context, uID, pID uuid.UUID) error {
				activated = &pID
				return nil
			},
		}
		pairs := &stubPairStore{
			createFn: func(ctx context.Context, pair *domain.LanguagePair) error { return nil },
		}

		svc := newUserService(t, db, users, pairs)
		pair, err := svc.CreatePair(context.Background(), userID, domain.LanguageRU, domain.LanguageDE)
		require.NoError(t, err)

		require.NotNil(t, activated)
		assert.Equal(t, pair.ID, *activated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("later pairs leave active selection alone", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		userID := uuid.New()
		existing := uuid.New()
		users := &stubUserStore{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				return &domain.User{ID: userID, Email: "user@example.com", ActivePairID: &existing}, nil
			},
			setActivePairFn: func(ctx context.Context, uID, pID uuid.UUID) error {
				t.Error("active pair must not change")
				return nil
			},
		}
		pairs := &stubPairStore{
			createFn: func(ctx context.Context, pair *domain.LanguagePair) error { return nil },
		}

		svc := newUserService(t, db, users, pairs)
		_, err := svc.CreatePair(context.Background(), userID, domain.LanguageRU, domain.LanguageEN)
		require.NoError(t, err)
	})

	t.Run("same source and target rejected", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)

		svc := newUserService(t, db, &stubUserStore{}, &stubPairStore{})
		_, err := svc.CreatePair(context.Background(), uuid.New(), domain.LanguageDE, domain.LanguageDE)
		assert.ErrorIs(t, err, domain.ErrSameLanguagePair)
	})
}

func TestUserService_SetActivePair(t *testing.T) {
	t.Parallel()

	db, _ := newMockDB(t)
	owner := uuid.New()
	pairID := uuid.New()

	pairs := &stubPairStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.LanguagePair, error) {
			if id == pairID {
				return &domain.LanguagePair{ID: pairID, UserID: owner}, nil
			}
			return nil, store.ErrPairNotFound
		},
	}
	users := &stubUserStore{
		setActivePairFn: func(ctx context.Context, uID, pID uuid.UUID) error { return nil },
	}

	svc := newUserService(t, db, users, pairs)

	t.Run("owner switches", func(t *testing.T) {
		assert.NoError(t, svc.SetActivePair(context.Background(), owner, pairID))
	})

	t.Run("foreign pair rejected", func(t *testing.T) {
		err := svc.SetActivePair(context.Background(), uuid.New(), pairID)
		assert.ErrorIs(t, err, ErrNotOwned)
	})

	t.Run("missing pair", func(t *testing.T) {
		err := svc.SetActivePair(context.Background(), owner, uuid.New())
		assert.ErrorIs(t, err, store.ErrPairNotFound)
	})
}

func TestUserService_ActivePair(t *testing.T) {
	t.Parallel()

	db, _ := newMockDB(t)
	userID := uuid.New()

	t.Run("none selected", func(t *testing.T) {
		t.Parallel()
		users := &stubUserStore{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				return &domain.User{ID: userID, Email: "user@example.com"}, nil
			},
		}
		svc := newUserService(t, db, users, &stubPairStore{})

		_, err := svc.ActivePair(context.Background(), userID)
		assert.ErrorIs(t, err, ErrNoActivePair)
	})

	t.Run("resolves selected pair", func(t *testing.T) {
		t.Parallel()
		pairID := uuid.New()
		users := &stubUserStore{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				return &domain.User{ID: userID, Email: "user@example.com", ActivePairID: &pairID}, nil
			},
		}
		pairs := &stubPairStore{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.LanguagePair, error) {
				return &domain.LanguagePair{ID: pairID, UserID: userID}, nil
			},
		}
		svc := newUserService(t, db, users, pairs)

		pair, err := svc.ActivePair(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, pairID, pair.ID)
	})
}

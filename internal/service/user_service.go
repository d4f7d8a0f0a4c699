package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/service/auth"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

// UserService handles account registration, authentication and language pair
// selection.
type UserService struct {
	db        *sql.DB
	userStore store.UserStore
	pairStore store.PairStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// NewUserService creates a UserService with the given dependencies.
func NewUserService(
	db *sql.DB,
	userStore store.UserStore,
	pairStore store.PairStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *UserService {
	if db == nil || userStore == nil || pairStore == nil || hasher == nil || verifier == nil {
		// ALLOW-PANIC: constructor enforcing required dependencies
		panic("user service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserService{
		db:        db,
		userStore: userStore,
		pairStore: pairStore,
		hasher:    hasher,
		verifier:  verifier,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// Register creates a new account. The plaintext password is hashed here and
// never reaches the store. Returns store.ErrEmailExists if the email is
// already registered.
func (s *UserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(email, password)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			return nil, store.ErrEmailExists
		}
		return nil, NewServiceError("register user", err)
	}

	s.logger.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Authenticate verifies the email/password combination. Both unknown email
// and wrong password come back as ErrInvalidCredentials so login responses
// do not reveal which accounts exist.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, NewServiceError("authenticate user", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrUserNotFound
		}
		return nil, NewServiceError("get user", err)
	}
	return user, nil
}

// CreatePair creates a language pair for the user. The first pair a user
// creates automatically becomes their active pair.
func (s *UserService) CreatePair(
	ctx context.Context,
	userID uuid.UUID,
	source, target domain.Language,
) (*domain.LanguagePair, error) {
	pair, err := domain.NewLanguagePair(userID, source, target)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, NewServiceError("create language pair", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.pairStore.WithTx(tx).Create(ctx, pair); err != nil {
			return err
		}
		if user.ActivePairID == nil {
			return s.userStore.WithTx(tx).SetActivePair(ctx, userID, pair.ID)
		}
		return nil
	})
	if err != nil {
		return nil, NewServiceError("create language pair", err)
	}

	s.logger.Info("language pair created",
		slog.String("pair_id", pair.ID.String()),
		slog.String("source", string(pair.SourceLang)),
		slog.String("target", string(pair.TargetLang)))
	return pair, nil
}

// ListPairs returns all of the user's language pairs, oldest first.
func (s *UserService) ListPairs(ctx context.Context, userID uuid.UUID) ([]*domain.LanguagePair, error) {
	pairs, err := s.pairStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("list language pairs", err)
	}
	return pairs, nil
}

// SetActivePair switches the user's active language pair. Returns ErrNotOwned
// when the pair belongs to someone else.
func (s *UserService) SetActivePair(ctx context.Context, userID, pairID uuid.UUID) error {
	pair, err := s.pairStore.GetByID(ctx, pairID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrPairNotFound
		}
		return NewServiceError("set active pair", err)
	}

	if pair.UserID != userID {
		return ErrNotOwned
	}

	if err := s.userStore.SetActivePair(ctx, userID, pairID); err != nil {
		return NewServiceError("set active pair", err)
	}

	return nil
}

// ActivePair resolves the user's currently selected pair. Returns
// ErrNoActivePair when none has been chosen yet.
func (s *UserService) ActivePair(ctx context.Context, userID uuid.UUID) (*domain.LanguagePair, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrUserNotFound
		}
		return nil, NewServiceError("resolve active pair", err)
	}

	if user.ActivePairID == nil {
		return nil, ErrNoActivePair
	}

	pair, err := s.pairStore.GetByID(ctx, *user.ActivePairID)
	if err != nil {
		return nil, NewServiceError("resolve active pair", err)
	}

	return pair, nil
}

// resolvePairForUser loads a pair and enforces ownership. Shared by the word
// and review services.
func resolvePairForUser(
	ctx context.Context,
	pairStore store.PairStore,
	userID, pairID uuid.UUID,
) (*domain.LanguagePair, error) {
	pair, err := pairStore.GetByID(ctx, pairID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrPairNotFound
		}
		return nil, fmt.Errorf("load pair: %w", err)
	}
	if pair.UserID != userID {
		return nil, ErrNotOwned
	}
	return pair, nil
}

package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/domain/srs"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

// newMockDB returns a *sql.DB whose transactions are faked, so transactional
// service flows can run against the in-memory store stubs below.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// The stubs embed their store interface and override only the methods a test
// exercises; calling anything else panics loudly. WithTx returns the stub
// itself since the stubs have no real transaction state.

type stubUserStore struct {
	store.UserStore
	createFn        func(ctx context.Context, user *domain.User) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	setActivePairFn func(ctx context.Context, userID, pairID uuid.UUID) error
}

func (s *stubUserStore) Create(ctx context.Context, user *domain.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserStore) SetActivePair(ctx context.Context, userID, pairID uuid.UUID) error {
	return s.setActivePairFn(ctx, userID, pairID)
}

func (s *stubUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

type stubPairStore struct {
	store.PairStore
	createFn     func(ctx context.Context, pair *domain.LanguagePair) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.LanguagePair, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.LanguagePair, error)
}

func (s *stubPairStore) Create(ctx context.Context, pair *domain.LanguagePair) error {
	return s.createFn(ctx, pair)
}

func (s *stubPairStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.LanguagePair, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubPairStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LanguagePair, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubPairStore) WithTx(tx *sql.Tx) store.PairStore { return s }

type stubWordStore struct {
	store.WordStore
	createFn     func(ctx context.Context, word *domain.Word) error
	getByIDFn    func(ctx context.Context, userID, id uuid.UUID) (*domain.Word, error)
	findByTextFn func(ctx context.Context, userID, pairID uuid.UUID, text string) (*domain.Word, error)
	listByPairFn func(ctx context.Context, userID, pairID uuid.UUID, setID *uuid.UUID, limit, offset int) ([]*domain.Word, error)
	updateFn     func(ctx context.Context, word *domain.Word) error
	deleteFn     func(ctx context.Context, userID, id uuid.UUID) error
}

func (s *stubWordStore) Create(ctx context.Context, word *domain.Word) error {
	return s.createFn(ctx, word)
}

func (s *stubWordStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Word, error) {
	return s.getByIDFn(ctx, userID, id)
}

func (s *stubWordStore) FindByText(
	ctx context.Context,
	userID, pairID uuid.UUID,
	text string,
) (*domain.Word, error) {
	return s.findByTextFn(ctx, userID, pairID, text)
}

func (s *stubWordStore) ListByPair(
	ctx context.Context,
	userID, pairID uuid.UUID,
	setID *uuid.UUID,
	limit, offset int,
) ([]*domain.Word, error) {
	return s.listByPairFn(ctx, userID, pairID, setID, limit, offset)
}

func (s *stubWordStore) Update(ctx context.Context, word *domain.Word) error {
	return s.updateFn(ctx, word)
}

func (s *stubWordStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.deleteFn(ctx, userID, id)
}

func (s *stubWordStore) WithTx(tx *sql.Tx) store.WordStore { return s }

type stubCardStore struct {
	store.CardStore
	createMultipleFn func(ctx context.Context, cards []*domain.Card) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	nextDueFn        func(ctx context.Context, userID, pairID uuid.UUID, setID *uuid.UUID, now time.Time) (*domain.Card, error)
	overviewFn       func(ctx context.Context, userID, pairID uuid.UUID, setID *uuid.UUID, now time.Time) (*store.CardOverview, error)
	applyReviewFn    func(ctx context.Context, cardID uuid.UUID, state srs.State, correct bool) error
}

func (s *stubCardStore) CreateMultiple(ctx context.Context, cards []*domain.Card) error {
	return s.createMultipleFn(ctx, cards)
}

func (s *stubCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCardStore) NextDue(
	ctx context.Context,
	userID, pairID uuid.UUID,
	setID *uuid.UUID,
	now time.Time,
) (*domain.Card, error) {
	return s.nextDueFn(ctx, userID, pairID, setID, now)
}

func (s *stubCardStore) Overview(
	ctx context.Context,
	userID, pairID uuid.UUID,
	setID *uuid.UUID,
	now time.Time,
) (*store.CardOverview, error) {
	return s.overviewFn(ctx, userID, pairID, setID, now)
}

func (s *stubCardStore) ApplyReview(
	ctx context.Context,
	cardID uuid.UUID,
	state srs.State,
	correct bool,
) error {
	return s.applyReviewFn(ctx, cardID, state, correct)
}

func (s *stubCardStore) WithTx(tx *sql.Tx) store.CardStore { return s }

type stubSetStore struct {
	store.SetStore
	createFn  func(ctx context.Context, set *domain.VocabularySet) error
	getByIDFn func(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularySet, error)
	deleteFn  func(ctx context.Context, userID, id uuid.UUID) error
}

func (s *stubSetStore) Create(ctx context.Context, set *domain.VocabularySet) error {
	return s.createFn(ctx, set)
}

func (s *stubSetStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularySet, error) {
	return s.getByIDFn(ctx, userID, id)
}

func (s *stubSetStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.deleteFn(ctx, userID, id)
}

func (s *stubSetStore) WithTx(tx *sql.Tx) store.SetStore { return s }

type stubReviewStore struct {
	store.ReviewStore
	createFn func(ctx context.Context, review *domain.Review) error
}

func (s *stubReviewStore) Create(ctx context.Context, review *domain.Review) error {
	return s.createFn(ctx, review)
}

func (s *stubReviewStore) WithTx(tx *sql.Tx) store.ReviewStore { return s }

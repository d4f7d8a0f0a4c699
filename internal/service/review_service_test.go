package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/domain/srs"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

type reviewFixture struct {
	svc    *ReviewService
	userID uuid.UUID
	pairID uuid.UUID
	card   *domain.Card
	word   *domain.Word

	appliedState   *srs.State
	appliedCorrect *bool
	savedReview    *domain.Review
}

// newReviewFixture wires a review service around one forward card at the
// given mastery index, with the service clock frozen at fixedNow.
func newReviewFixture(t *testing.T, db *sql.DB, srsIndex int, fixedNow time.Time) *reviewFixture {
	t.Helper()

	f := &reviewFixture{
		userID: uuid.New(),
		pairID: uuid.New(),
	}
	f.word = &domain.Word{
		ID:          uuid.New(),
		UserID:      f.userID,
		PairID:      f.pairID,
		Text:        "Hund",
		Translation: "собака",
		Synonyms:    []string{"Köter"},
	}
	f.card = &domain.Card{
		ID:           uuid.New(),
		UserID:       f.userID,
		WordID:       f.word.ID,
		PairID:       f.pairID,
		Direction:    domain.DirectionForward,
		SrsIndex:     srsIndex,
		NextReviewAt: fixedNow.Add(-time.Minute),
	}

	cards := &stubCardStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
			if id == f.card.ID {
				copy := *f.card
				return &copy, nil
			}
			return nil, store.ErrCardNotFound
		},
		nextDueFn: func(ctx context.Context, userID, pairID uuid.UUID, setID *uuid.UUID, now time.Time) (*domain.Card, error) {
			copy := *f.card
			return &copy, nil
		},
		applyReviewFn: func(ctx context.Context, cardID uuid.UUID, state srs.State, correct bool) error {
			f.appliedState = &state
			f.appliedCorrect = &correct
			return nil
		},
	}
	words := &stubWordStore{
		getByIDFn: func(ctx context.Context, userID, id uuid.UUID) (*domain.Word, error) {
			copy := *f.word
			return &copy, nil
		},
	}
	reviews := &stubReviewStore{
		createFn: func(ctx context.Context, review *domain.Review) error {
			f.savedReview = review
			return nil
		},
	}

	f.svc = NewReviewService(db, cards, words, ownedPairStore(f.userID, f.pairID), reviews, srs.NewService(), nil)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func TestReviewService_NextCard(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("forward card prompts with translation", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		f := newReviewFixture(t, db, 0, now)

		card, err := f.svc.NextCard(context.Background(), f.userID, f.pairID, nil)
		require.NoError(t, err)

		assert.Equal(t, f.card.ID, card.Card.ID)
		assert.Equal(t, "собака", card.Prompt, "forward cards show the translation")
	})

	t.Run("reverse card prompts with word", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		f := newReviewFixture(t, db, 0, now)
		f.card.Direction = domain.DirectionReverse

		card, err := f.svc.NextCard(context.Background(), f.userID, f.pairID, nil)
		require.NoError(t, err)
		assert.Equal(t, "Hund", card.Prompt)
	})

	t.Run("nothing due", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		f := newReviewFixture(t, db, 0, now)

		cards := &stubCardStore{
			nextDueFn: func(ctx context.Context, userID, pairID uuid.UUID, setID *uuid.UUID, now time.Time) (*domain.Card, error) {
				return nil, store.ErrCardNotFound
			},
		}
		svc := NewReviewService(db, cards, &stubWordStore{}, ownedPairStore(f.userID, f.pairID),
			&stubReviewStore{}, srs.NewService(), nil)

		_, err := svc.NextCard(context.Background(), f.userID, f.pairID, nil)
		assert.ErrorIs(t, err, ErrNoCardsDue)
	})

	t.Run("foreign pair", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		f := newReviewFixture(t, db, 0, now)

		_, err := f.svc.NextCard(context.Background(), uuid.New(), f.pairID, nil)
		assert.ErrorIs(t, err, ErrNotOwned)
	})
}

func TestReviewService_SubmitAnswer(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("correct answer promotes one level", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		f := newReviewFixture(t, db, 2, now)

		result, err := f.svc.SubmitAnswer(context.Background(), f.userID, f.card.ID, "Hund", nil)
		require.NoError(t, err)

		assert.True(t, result.Correct)
		assert.Equal(t, 3, result.Card.SrsIndex)
		assert.Equal(t, now.Add(10*time.Minute), result.Card.NextReviewAt)

		require.NotNil(t, f.appliedState)
		assert.Equal(t, 3, f.appliedState.Index)
		require.NotNil(t, f.savedReview)
		assert.True(t, f.savedReview.IsCorrect)
		assert.Equal(t, "Hund", f.savedReview.Answer)
	})

	t.Run("synonym accepted on forward card", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		f := newReviewFixture(t, db, 0, now)

		result, err := f.svc.SubmitAnswer(context.Background(), f.userID, f.card.ID, "Köter", nil)
		require.NoError(t, err)
		assert.True(t, result.Correct)
	})

	t.Run("wrong answer drops three levels", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		f := newReviewFixture(t, db, 5, now)

		result, err := f.svc.SubmitAnswer(context.Background(), f.userID, f.card.ID, "Katze", nil)
		require.NoError(t, err)

		assert.False(t, result.Correct)
		assert.Equal(t, "Hund", result.ExpectedText)
		assert.Equal(t, 2, result.Card.SrsIndex)
		assert.Equal(t, now.Add(5*time.Minute), result.Card.NextReviewAt)
	})

	t.Run("wrong answer at level zero stays at zero", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		f := newReviewFixture(t, db, 0, now)

		result, err := f.svc.SubmitAnswer(context.Background(), f.userID, f.card.ID, "", nil)
		require.NoError(t, err)
		assert.False(t, result.Correct)
		assert.Equal(t, 0, result.Card.SrsIndex)
	})

	t.Run("someone else's card", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		f := newReviewFixture(t, db, 0, now)

		_, err := f.svc.SubmitAnswer(context.Background(), uuid.New(), f.card.ID, "Hund", nil)
		assert.ErrorIs(t, err, ErrNotOwned)
	})

	t.Run("unknown card", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		f := newReviewFixture(t, db, 0, now)

		_, err := f.svc.SubmitAnswer(context.Background(), f.userID, uuid.New(), "Hund", nil)
		assert.ErrorIs(t, err, store.ErrCardNotFound)
	})

	t.Run("corrupt srs index aborts", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		f := newReviewFixture(t, db, 0, now)
		f.card.SrsIndex = 99

		_, err := f.svc.SubmitAnswer(context.Background(), f.userID, f.card.ID, "Hund", nil)
		assert.ErrorIs(t, err, srs.ErrIndexOutOfRange)
	})
}

func TestReviewService_Overview(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	db, _ := newMockDB(t)
	f := newReviewFixture(t, db, 0, now)

	next := now.Add(time.Hour)
	cards := &stubCardStore{
		overviewFn: func(ctx context.Context, userID, pairID uuid.UUID, setID *uuid.UUID, at time.Time) (*store.CardOverview, error) {
			assert.Equal(t, now, at)
			return &store.CardOverview{Total: 12, Due: 3, NextReviewAt: &next}, nil
		},
	}
	svc := NewReviewService(db, cards, &stubWordStore{}, ownedPairStore(f.userID, f.pairID),
		&stubReviewStore{}, srs.NewService(), nil)
	svc.now = func() time.Time { return now }

	overview, err := svc.Overview(context.Background(), f.userID, f.pairID, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, overview.Total)
	assert.Equal(t, 3, overview.Due)
	require.NotNil(t, overview.NextReviewAt)
	assert.Equal(t, next, *overview.NextReviewAt)
}

package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/domain/answer"
	"github.com/lpetrosyan/vocab-api/internal/domain/srs"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

// ReviewCard is a due card paired with everything the client needs to render
// the exercise: the prompt text shown to the user and the word it belongs to.
type ReviewCard struct {
	Card   *domain.Card `json:"card"`
	Word   *domain.Word `json:"word"`
	Prompt string       `json:"prompt"`
}

// ReviewResult is the outcome of one submitted answer.
type ReviewResult struct {
	Correct bool `json:"correct"`

	// ExpectedText is the text the answer was checked against, revealed so
	// the client can show the correction after a wrong answer.
	ExpectedText string `json:"expected_text"`

	// Card is the card's state after the scheduler transition.
	Card *domain.Card `json:"card"`
}

// ReviewService runs the review loop: hand out the earliest-overdue card,
// validate the submitted answer, and persist the scheduler transition
// together with the review log entry in one transaction.
type ReviewService struct {
	db          *sql.DB
	cardStore   store.CardStore
	wordStore   store.WordStore
	pairStore   store.PairStore
	reviewStore store.ReviewStore
	scheduler   srs.Service
	now         func() time.Time // injectable for testing
	logger      *slog.Logger
}

// NewReviewService creates a ReviewService with the given dependencies.
func NewReviewService(
	db *sql.DB,
	cardStore store.CardStore,
	wordStore store.WordStore,
	pairStore store.PairStore,
	reviewStore store.ReviewStore,
	scheduler srs.Service,
	logger *slog.Logger,
) *ReviewService {
	if db == nil || cardStore == nil || wordStore == nil || pairStore == nil ||
		reviewStore == nil || scheduler == nil {
		// ALLOW-PANIC: constructor enforcing required dependencies
		panic("review service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewService{
		db:          db,
		cardStore:   cardStore,
		wordStore:   wordStore,
		pairStore:   pairStore,
		reviewStore: reviewStore,
		scheduler:   scheduler,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger.With(slog.String("component", "review_service")),
	}
}

// NextCard returns the earliest-overdue card in the pair, optionally scoped
// to one vocabulary set. Returns ErrNoCardsDue when nothing is due yet.
func (s *ReviewService) NextCard(
	ctx context.Context,
	userID, pairID uuid.UUID,
	setID *uuid.UUID,
) (*ReviewCard, error) {
	if _, err := resolvePairForUser(ctx, s.pairStore, userID, pairID); err != nil {
		return nil, err
	}

	card, err := s.cardStore.NextDue(ctx, userID, pairID, setID, s.now())
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrNoCardsDue
		}
		return nil, NewServiceError("next card", err)
	}

	word, err := s.wordStore.GetByID(ctx, userID, card.WordID)
	if err != nil {
		return nil, NewServiceError("next card", err)
	}

	return &ReviewCard{
		Card:   card,
		Word:   word,
		Prompt: promptFor(card, word),
	}, nil
}

// promptFor is the text shown to the user: the translation on a forward card
// (answer with the word), the word itself on a reverse card.
func promptFor(card *domain.Card, word *domain.Word) string {
	if card.Direction == domain.DirectionForward {
		return word.Translation
	}
	return word.Text
}

// Overview reports the pair's workload: total cards, cards currently due and
// the next scheduled review time.
func (s *ReviewService) Overview(
	ctx context.Context,
	userID, pairID uuid.UUID,
	setID *uuid.UUID,
) (*store.CardOverview, error) {
	if _, err := resolvePairForUser(ctx, s.pairStore, userID, pairID); err != nil {
		return nil, err
	}

	overview, err := s.cardStore.Overview(ctx, userID, pairID, setID, s.now())
	if err != nil {
		return nil, NewServiceError("review overview", err)
	}
	return overview, nil
}

// SubmitAnswer validates the submitted answer against the card, applies the
// matching scheduler transition and records the attempt. The card update and
// the review log entry commit atomically. Validation itself never fails:
// any answer the engine cannot accept simply counts as wrong.
func (s *ReviewService) SubmitAnswer(
	ctx context.Context,
	userID, cardID uuid.UUID,
	submitted string,
	responseTimeMs *int,
) (*ReviewResult, error) {
	card, err := s.cardStore.GetByID(ctx, cardID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrCardNotFound
		}
		return nil, NewServiceError("submit answer", err)
	}
	if card.UserID != userID {
		return nil, ErrNotOwned
	}

	word, err := s.wordStore.GetByID(ctx, userID, card.WordID)
	if err != nil {
		return nil, NewServiceError("submit answer", err)
	}
	pair, err := s.pairStore.GetByID(ctx, card.PairID)
	if err != nil {
		return nil, NewServiceError("submit answer", err)
	}

	cardCtx := answer.ContextForCard(card, word, pair)
	correct := answer.EvaluateForCard(submitted, cardCtx)

	expected := word.Text
	if card.Direction == domain.DirectionReverse {
		expected = word.Translation
	}

	now := s.now()
	var state srs.State
	if correct {
		state, err = s.scheduler.ApplyCorrect(card.SrsIndex, now)
	} else {
		state, err = s.scheduler.ApplyWrong(card.SrsIndex, now)
	}
	if err != nil {
		// A card with an index outside the interval table is corrupt data,
		// not a wrong answer.
		return nil, NewServiceError("submit answer", err)
	}

	review, err := domain.NewReview(card.ID, userID, submitted, correct, responseTimeMs)
	if err != nil {
		return nil, NewServiceError("submit answer", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.cardStore.WithTx(tx).ApplyReview(ctx, card.ID, state, correct); err != nil {
			return err
		}
		return s.reviewStore.WithTx(tx).Create(ctx, review)
	})
	if err != nil {
		return nil, NewServiceError("submit answer", err)
	}

	card.SrsIndex = state.Index
	card.NextReviewAt = state.NextReviewAt
	if correct {
		card.CorrectCount++
	} else {
		card.IncorrectCount++
	}

	s.logger.Info("answer reviewed",
		slog.String("card_id", card.ID.String()),
		slog.Bool("correct", correct),
		slog.Int("srs_index", card.SrsIndex))

	return &ReviewResult{
		Correct:      correct,
		ExpectedText: expected,
		Card:         card,
	}, nil
}

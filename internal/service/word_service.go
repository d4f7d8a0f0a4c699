package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/domain/textnorm"
	"github.com/lpetrosyan/vocab-api/internal/events"
	"github.com/lpetrosyan/vocab-api/internal/generation"
	"github.com/lpetrosyan/vocab-api/internal/store"
	"github.com/lpetrosyan/vocab-api/internal/task"
)

// WordUpdate carries the mutable content fields of a word. Nil fields are
// left untouched.
type WordUpdate struct {
	Translation   *string
	Synonyms      *[]string
	PartOfSpeech  *string
	Gender        *string
	Transcription *string
	Note          *string
	Examples      *[]domain.Example
	SetID         **uuid.UUID
}

// WordService manages vocabulary entries and their review cards. Adding a
// word atomically creates its forward and reverse cards; deleting a word
// removes both along with the review history.
type WordService struct {
	db        *sql.DB
	wordStore store.WordStore
	cardStore store.CardStore
	setStore  store.SetStore
	pairStore store.PairStore
	emitter   events.EventEmitter
	logger    *slog.Logger
}

// NewWordService creates a WordService with the given dependencies. The
// emitter may be nil when background enrichment is disabled.
func NewWordService(
	db *sql.DB,
	wordStore store.WordStore,
	cardStore store.CardStore,
	setStore store.SetStore,
	pairStore store.PairStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *WordService {
	if db == nil || wordStore == nil || cardStore == nil || setStore == nil || pairStore == nil {
		// ALLOW-PANIC: constructor enforcing required dependencies
		panic("word service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WordService{
		db:        db,
		wordStore: wordStore,
		cardStore: cardStore,
		setStore:  setStore,
		pairStore: pairStore,
		emitter:   emitter,
		logger:    logger.With(slog.String("component", "word_service")),
	}
}

// AddWord creates a vocabulary entry together with its forward and reverse
// cards, all in one transaction. Both cards start at mastery index 0 and are
// due immediately. When generate is true and an emitter is configured, a
// word-created event is published afterwards to request background
// enrichment; a failed emit never rolls back the word.
func (s *WordService) AddWord(
	ctx context.Context,
	userID, pairID uuid.UUID,
	setID *uuid.UUID,
	text, translation string,
	generate bool,
) (*domain.Word, error) {
	if _, err := resolvePairForUser(ctx, s.pairStore, userID, pairID); err != nil {
		return nil, err
	}

	if setID != nil {
		set, err := s.setStore.GetByID(ctx, userID, *setID)
		if err != nil {
			return nil, err
		}
		if set.PairID != pairID {
			return nil, store.ErrSetNotFound
		}
	}

	word, err := domain.NewWord(userID, pairID, text, translation)
	if err != nil {
		return nil, err
	}
	word.SetID = setID

	cards, err := domain.NewCardsForWord(word)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.wordStore.WithTx(tx).Create(ctx, word); err != nil {
			return err
		}
		return s.cardStore.WithTx(tx).CreateMultiple(ctx, cards)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			return nil, store.ErrWordExists
		}
		return nil, NewServiceError("add word", err)
	}

	s.logger.Info("word added",
		slog.String("word_id", word.ID.String()),
		slog.String("pair_id", pairID.String()))

	if generate {
		s.emitWordCreated(ctx, word)
	}

	return word, nil
}

func (s *WordService) emitWordCreated(ctx context.Context, word *domain.Word) {
	if s.emitter == nil {
		return
	}

	event, err := events.NewTaskRequestEvent(events.TypeWordCreated, events.WordCreatedPayload{
		WordID: word.ID,
		UserID: word.UserID,
		PairID: word.PairID,
	})
	if err != nil {
		s.logger.Error("failed to build word-created event",
			"error", err,
			"word_id", word.ID)
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Error("failed to emit word-created event",
			"error", err,
			"word_id", word.ID)
	}
}

// GetWord retrieves a word by ID scoped to its owner.
func (s *WordService) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	word, err := s.wordStore.GetByID(ctx, userID, wordID)
	if err != nil {
		return nil, err
	}
	return word, nil
}

// FindWord looks a word up by target-language text within a pair. Exact match
// is tried first; failing that, the query's search variants (normalized,
// whitespace-concatenated, article-stripped) are intersected against each
// stored word's variants, so "die Katze", "katze" and "Deadline"/"dead line"
// all resolve to the same entry. Returns store.ErrWordNotFound when nothing
// matches.
func (s *WordService) FindWord(ctx context.Context, userID, pairID uuid.UUID, query string) (*domain.Word, error) {
	word, err := s.wordStore.FindByText(ctx, userID, pairID, query)
	if err == nil {
		return word, nil
	}
	if !store.IsNotFoundError(err) {
		return nil, NewServiceError("find word", err)
	}

	queryVariants := textnorm.SearchVariants(query)
	if len(queryVariants) == 0 {
		return nil, store.ErrWordNotFound
	}

	words, err := s.wordStore.ListByPair(ctx, userID, pairID, nil, 0, 0)
	if err != nil {
		return nil, NewServiceError("find word", err)
	}

	for _, candidate := range words {
		for variant := range textnorm.SearchVariants(candidate.Text) {
			if _, ok := queryVariants[variant]; ok {
				return candidate, nil
			}
		}
	}

	return nil, store.ErrWordNotFound
}

// ListWords returns the pair's words, scoped to a set when setID is non-nil.
// Limit 0 means no limit.
func (s *WordService) ListWords(
	ctx context.Context,
	userID, pairID uuid.UUID,
	setID *uuid.UUID,
	limit, offset int,
) ([]*domain.Word, error) {
	if _, err := resolvePairForUser(ctx, s.pairStore, userID, pairID); err != nil {
		return nil, err
	}

	words, err := s.wordStore.ListByPair(ctx, userID, pairID, setID, limit, offset)
	if err != nil {
		return nil, NewServiceError("list words", err)
	}
	return words, nil
}

// UpdateWord applies the non-nil fields of update to the word's content.
// The target-language text itself is immutable; correcting a typo means
// deleting and re-adding, which also resets the cards honestly. Moving the
// word into a set requires the set to exist, belong to the user and live in
// the word's pair.
func (s *WordService) UpdateWord(
	ctx context.Context,
	userID, wordID uuid.UUID,
	update WordUpdate,
) (*domain.Word, error) {
	word, err := s.wordStore.GetByID(ctx, userID, wordID)
	if err != nil {
		return nil, err
	}

	if update.Translation != nil {
		word.Translation = *update.Translation
	}
	if update.Synonyms != nil {
		word.Synonyms = *update.Synonyms
	}
	if update.PartOfSpeech != nil {
		word.PartOfSpeech = *update.PartOfSpeech
	}
	if update.Gender != nil {
		word.Gender = *update.Gender
	}
	if update.Transcription != nil {
		word.Transcription = *update.Transcription
	}
	if update.Note != nil {
		word.Note = *update.Note
	}
	if update.Examples != nil {
		word.Examples = *update.Examples
	}
	if update.SetID != nil {
		if newSetID := *update.SetID; newSetID != nil {
			set, err := s.setStore.GetByID(ctx, userID, *newSetID)
			if err != nil {
				return nil, err
			}
			if set.PairID != word.PairID {
				return nil, store.ErrSetNotFound
			}
		}
		word.SetID = *update.SetID
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	if err := s.wordStore.Update(ctx, word); err != nil {
		return nil, NewServiceError("update word", err)
	}

	return word, nil
}

// EnrichWord merges generated content into a word, keeping any fields the
// user already filled in by hand. Called by the background enrichment task.
func (s *WordService) EnrichWord(
	ctx context.Context,
	userID, wordID uuid.UUID,
	content *generation.WordContent,
) (*domain.Word, error) {
	word, err := s.wordStore.GetByID(ctx, userID, wordID)
	if err != nil {
		return nil, err
	}

	if len(word.Synonyms) == 0 && len(content.Synonyms) > 0 {
		word.Synonyms = content.Synonyms
	}
	if word.PartOfSpeech == "" {
		word.PartOfSpeech = content.PartOfSpeech
	}
	if word.Gender == "" {
		word.Gender = content.Gender
	}
	if word.Transcription == "" {
		word.Transcription = content.Transcription
	}
	if len(word.Examples) == 0 && len(content.Examples) > 0 {
		word.Examples = content.Examples
	}

	if err := s.wordStore.Update(ctx, word); err != nil {
		return nil, NewServiceError("enrich word", err)
	}

	s.logger.Info("word enriched",
		slog.String("word_id", word.ID.String()),
		slog.Int("synonyms", len(word.Synonyms)),
		slog.Int("examples", len(word.Examples)))

	return word, nil
}

// DeleteWord removes a word together with its cards and review history.
func (s *WordService) DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error {
	if err := s.wordStore.Delete(ctx, userID, wordID); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrWordNotFound
		}
		return NewServiceError("delete word", err)
	}
	return nil
}

// CreateSet creates a vocabulary set inside the pair.
func (s *WordService) CreateSet(
	ctx context.Context,
	userID, pairID uuid.UUID,
	name string,
) (*domain.VocabularySet, error) {
	if _, err := resolvePairForUser(ctx, s.pairStore, userID, pairID); err != nil {
		return nil, err
	}

	set, err := domain.NewVocabularySet(userID, pairID, name)
	if err != nil {
		return nil, err
	}

	if err := s.setStore.Create(ctx, set); err != nil {
		return nil, NewServiceError("create set", err)
	}
	return set, nil
}

// ListSets returns the pair's vocabulary sets ordered by name.
func (s *WordService) ListSets(ctx context.Context, userID, pairID uuid.UUID) ([]*domain.VocabularySet, error) {
	sets, err := s.setStore.ListByPair(ctx, userID, pairID)
	if err != nil {
		return nil, NewServiceError("list sets", err)
	}
	return sets, nil
}

// DeleteSet removes a set; its words survive without set membership.
func (s *WordService) DeleteSet(ctx context.Context, userID, setID uuid.UUID) error {
	if err := s.setStore.Delete(ctx, userID, setID); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrSetNotFound
		}
		return NewServiceError("delete set", err)
	}
	return nil
}

var _ task.WordEnricher = (*WordService)(nil)

package srs

import "time"

// State is the scheduler's output for one transition: the card's new mastery
// index and the absolute time of its next review.
type State struct {
	Index        int       `json:"index"`
	NextReviewAt time.Time `json:"next_review_at"`
}

// Service defines the scheduler's transition operations. Both are pure given
// their inputs; wall-clock time only enters through the now parameter.
type Service interface {
	// ApplyCorrect promotes the card one level, capped at MaxIndex, and
	// schedules the next review one full interval out.
	// Returns ErrIndexOutOfRange for an index outside [0, MaxIndex].
	ApplyCorrect(currentIndex int, now time.Time) (State, error)

	// ApplyWrong demotes the card three levels, floored at 0, and schedules
	// the next review one (shortened) interval out.
	// Returns ErrIndexOutOfRange for an index outside [0, MaxIndex].
	ApplyWrong(currentIndex int, now time.Time) (State, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct{}

// NewService creates the scheduler service.
func NewService() Service {
	return &defaultService{}
}

// Verify interface compliance at compile time
var _ Service = (*defaultService)(nil)

// ApplyCorrect implements Service.ApplyCorrect.
func (s *defaultService) ApplyCorrect(currentIndex int, now time.Time) (State, error) {
	if err := validateIndex(currentIndex); err != nil {
		return State{}, err
	}

	next := currentIndex + 1
	if next > MaxIndex {
		next = MaxIndex
	}

	return nextState(next, now)
}

// ApplyWrong implements Service.ApplyWrong.
func (s *defaultService) ApplyWrong(currentIndex int, now time.Time) (State, error) {
	if err := validateIndex(currentIndex); err != nil {
		return State{}, err
	}

	next := currentIndex - wrongAnswerPenalty
	if next < 0 {
		next = 0
	}

	return nextState(next, now)
}

func nextState(index int, now time.Time) (State, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}

	interval, err := IntervalFor(index)
	if err != nil {
		return State{}, err
	}

	return State{
		Index:        index,
		NextReviewAt: now.Add(interval),
	}, nil
}

package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCorrectPromotesOneLevel(t *testing.T) {
	t.Parallel()
	service := NewService()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i <= MaxIndex; i++ {
		state, err := service.ApplyCorrect(i, now)
		require.NoError(t, err, "index %d", i)

		expected := i + 1
		if expected > MaxIndex {
			expected = MaxIndex
		}
		assert.Equal(t, expected, state.Index, "index %d", i)

		interval, err := IntervalFor(state.Index)
		require.NoError(t, err)
		assert.Equal(t, now.Add(interval), state.NextReviewAt,
			"due time must be now + interval of the new index (from %d)", i)
	}
}

func TestApplyWrongDemotesThreeLevels(t *testing.T) {
	t.Parallel()
	service := NewService()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i <= MaxIndex; i++ {
		state, err := service.ApplyWrong(i, now)
		require.NoError(t, err, "index %d", i)

		expected := i - 3
		if expected < 0 {
			expected = 0
		}
		assert.Equal(t, expected, state.Index, "index %d", i)

		interval, err := IntervalFor(state.Index)
		require.NoError(t, err)
		assert.Equal(t, now.Add(interval), state.NextReviewAt,
			"due time must be now + interval of the new index (from %d)", i)
	}
}

func TestCeilingAndFloorAbsorption(t *testing.T) {
	t.Parallel()
	service := NewService()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	state, err := service.ApplyCorrect(MaxIndex, now)
	require.NoError(t, err)
	assert.Equal(t, MaxIndex, state.Index, "correct at the ceiling stays at the ceiling")

	for _, i := range []int{0, 1, 2} {
		state, err := service.ApplyWrong(i, now)
		require.NoError(t, err)
		assert.Equal(t, 0, state.Index, "wrong at index %d lands on the floor", i)
	}
}

func TestOutOfRangeIndexRejected(t *testing.T) {
	t.Parallel()
	service := NewService()
	now := time.Now().UTC()

	for _, i := range []int{-1, 21, 100} {
		_, err := service.ApplyCorrect(i, now)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "ApplyCorrect(%d)", i)

		_, err = service.ApplyWrong(i, now)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "ApplyWrong(%d)", i)
	}
}

func TestRoundTripNeverFails(t *testing.T) {
	t.Parallel()
	service := NewService()
	now := time.Now().UTC()

	for i := 0; i <= MaxIndex; i++ {
		correct, err := service.ApplyCorrect(i, now)
		require.NoError(t, err)
		_, err = IntervalFor(correct.Index)
		assert.NoError(t, err, "interval lookup for scheduler-produced index %d", correct.Index)

		wrong, err := service.ApplyWrong(i, now)
		require.NoError(t, err)
		_, err = IntervalFor(wrong.Index)
		assert.NoError(t, err, "interval lookup for scheduler-produced index %d", wrong.Index)
	}
}

func TestZeroNowDefaultsToWallClock(t *testing.T) {
	t.Parallel()
	service := NewService()

	before := time.Now().UTC()
	state, err := service.ApplyCorrect(0, time.Time{})
	require.NoError(t, err)
	after := time.Now().UTC()

	interval, err := IntervalFor(state.Index)
	require.NoError(t, err)
	assert.False(t, state.NextReviewAt.Before(before.Add(interval)))
	assert.False(t, state.NextReviewAt.After(after.Add(interval)))
}

// A card at index 5 answered correctly moves to 6; a later wrong answer at 6
// drops it back to 3.
func TestPromoteThenDemoteScenario(t *testing.T) {
	t.Parallel()
	service := NewService()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	promoted, err := service.ApplyCorrect(5, now)
	require.NoError(t, err)
	assert.Equal(t, 6, promoted.Index)

	interval6, err := IntervalFor(6)
	require.NoError(t, err)
	assert.Equal(t, now.Add(interval6), promoted.NextReviewAt)

	later := now.Add(2 * time.Hour)
	demoted, err := service.ApplyWrong(promoted.Index, later)
	require.NoError(t, err)
	assert.Equal(t, 3, demoted.Index)

	interval3, err := IntervalFor(3)
	require.NoError(t, err)
	assert.Equal(t, later.Add(interval3), demoted.NextReviewAt)
}

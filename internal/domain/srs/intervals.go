// Package srs implements the spaced-repetition scheduler: a fixed table of
// review intervals and the promote/demote transition applied after each
// validated answer.
package srs

import (
	"errors"
	"fmt"
	"time"
)

// ErrIndexOutOfRange is returned when a mastery index outside [0, MaxIndex]
// reaches the scheduler. Callers only ever pass back scheduler-produced
// indices, so this indicates state corruption upstream; it must propagate
// and abort the enclosing operation, never be clamped.
var ErrIndexOutOfRange = errors.New("srs index out of range")

// intervalTable is the fixed review schedule. It is strictly non-decreasing:
// a card climbs one position per correct answer and the wait before the next
// review grows from one minute to half a year.
var intervalTable = [...]time.Duration{
	1 * time.Minute,
	3 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
	30 * time.Minute,
	1 * time.Hour,
	2 * time.Hour,
	3 * time.Hour,
	5 * time.Hour,
	10 * time.Hour,
	24 * time.Hour,
	2 * 24 * time.Hour,
	3 * 24 * time.Hour,
	5 * 24 * time.Hour,
	7 * 24 * time.Hour,
	10 * 24 * time.Hour,
	14 * 24 * time.Hour,
	30 * 24 * time.Hour,
	60 * 24 * time.Hour,
	90 * 24 * time.Hour,
	180 * 24 * time.Hour,
}

// MaxIndex is the highest mastery index; cards at this level keep the longest
// interval on further correct answers.
const MaxIndex = len(intervalTable) - 1

// wrongAnswerPenalty is how many levels a card drops on a wrong answer.
// A single mistake sets the card back materially without erasing all
// progress.
const wrongAnswerPenalty = 3

// IntervalFor returns the review interval for the given mastery index.
// Returns ErrIndexOutOfRange if the index is outside [0, MaxIndex].
func IntervalFor(index int) (time.Duration, error) {
	if err := validateIndex(index); err != nil {
		return 0, err
	}
	return intervalTable[index], nil
}

// Intervals returns a copy of the full interval table.
func Intervals() []time.Duration {
	out := make([]time.Duration, len(intervalTable))
	copy(out, intervalTable[:])
	return out
}

func validateIndex(index int) error {
	if index < 0 || index > MaxIndex {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, MaxIndex)
	}
	return nil
}

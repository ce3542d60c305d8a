package domain

import (
	"errors"
	"fmt"
)

// ErrQualityOutOfRange is returned when a quality score falls outside [0, 5].
var ErrQualityOutOfRange = errors.New("quality score must be between 0 and 5")

// Quality score bounds.
const (
	// MinQuality is total recall failure.
	MinQuality = 0

	// MaxQuality is perfect recall.
	MaxQuality = 5

	// PassingQuality is the lowest score counted as successful recall.
	// Scores below it reset a card's interval.
	PassingQuality = 3
)

// Quality is a learner's 0-5 self-assessment of recall success for one
// review event. Construct values through NewQuality so that out-of-range
// scores are rejected at the boundary instead of misbehaving downstream.
type Quality int

// NewQuality creates a Quality from an integer, rejecting values
// outside [0, 5].
func NewQuality(score int) (Quality, error) {
	q := Quality(score)
	if !q.IsValid() {
		return 0, fmt.Errorf("%w: got %d", ErrQualityOutOfRange, score)
	}
	return q, nil
}

// IsValid reports whether q is within [0, 5].
func (q Quality) IsValid() bool {
	return q >= MinQuality && q <= MaxQuality
}

// Passing reports whether q counts as successful recall.
func (q Quality) Passing() bool {
	return q >= PassingQuality
}

// Int returns the score as a plain int.
func (q Quality) Int() int {
	return int(q)
}

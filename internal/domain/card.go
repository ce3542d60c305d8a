package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardFrontEmpty is returned when a card's front (source term) is empty.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card's back (translation) is empty.
	ErrCardBackEmpty = errors.New("card back cannot be empty")

	// ErrCardEaseFactorLow is returned when a card's ease factor is below the
	// SM-2 floor.
	ErrCardEaseFactorLow = errors.New("card ease factor must be at least 1.3")

	// ErrCardIntervalInvalid is returned when a card's interval is below one day.
	ErrCardIntervalInvalid = errors.New("card interval must be at least 1 day")

	// ErrCardDueZero is returned when a card has no due date.
	ErrCardDueZero = errors.New("card due date cannot be zero")
)

// Scheduling defaults for newly created cards.
const (
	// MinEaseFactor is the floor below which the ease factor never drops.
	// Without it, a run of failed reviews would collapse intervals toward zero.
	MinEaseFactor = 1.3

	// DefaultEaseFactor is the ease factor assigned to new cards.
	DefaultEaseFactor = 2.5

	// DefaultInterval is the review interval in days assigned to new cards.
	DefaultInterval = 1
)

// VocabCard represents a single vocabulary item under spaced repetition.
// EaseFactor, Interval, and Due are mutated exclusively by the scheduler;
// Front and Back are the semantic content and stay fixed after creation.
type VocabCard struct {
	ID         uuid.UUID `json:"id"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	EaseFactor float64   `json:"ease_factor"`
	Interval   int       `json:"interval"`
	Due        Day       `json:"due"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewVocabCard creates a new VocabCard with default scheduling state:
// ease factor 2.5, interval 1 day, due today. Returns an error if
// validation fails.
func NewVocabCard(front, back string, today Day) (*VocabCard, error) {
	now := time.Now().UTC()
	card := &VocabCard{
		ID:         uuid.New(),
		Front:      front,
		Back:       back,
		EaseFactor: DefaultEaseFactor,
		Interval:   DefaultInterval,
		Due:        today,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the VocabCard has valid data.
// Returns an error if any field fails validation.
func (c *VocabCard) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.Front == "" {
		return ErrCardFrontEmpty
	}

	if c.Back == "" {
		return ErrCardBackEmpty
	}

	if c.EaseFactor < MinEaseFactor {
		return ErrCardEaseFactorLow
	}

	if c.Interval < 1 {
		return ErrCardIntervalInvalid
	}

	if c.Due.IsZero() {
		return ErrCardDueZero
	}

	return nil
}

// IsDue reports whether the card is eligible for review on the given day.
func (c *VocabCard) IsDue(today Day) bool {
	return !c.Due.After(today)
}

// Clone returns a deep copy of the card.
func (c *VocabCard) Clone() *VocabCard {
	clone := *c
	return &clone
}

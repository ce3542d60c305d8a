package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Session-specific validation errors
var (
	// ErrSessionIDEmpty is returned when a session ID is empty or nil.
	ErrSessionIDEmpty = errors.New("session ID cannot be empty")

	// ErrSessionDateZero is returned when a session has no date.
	ErrSessionDateZero = errors.New("session date cannot be zero")

	// ErrSessionMinutesInvalid is returned when a session's duration is not
	// positive. Non-positive minutes are a data-integrity violation rejected
	// at the append boundary, never tolerated downstream.
	ErrSessionMinutesInvalid = errors.New("session minutes must be positive")
)

// StudySession is one entry in the append-only study log. Entries are
// keyed by local calendar day, never mutated, and never reordered; the
// only removal path is whole-log replacement via import.
type StudySession struct {
	ID       uuid.UUID `json:"id"`
	Date     Day       `json:"date"`
	Minutes  int       `json:"minutes"`
	Activity Activity  `json:"activity"`
	Notes    string    `json:"notes,omitempty"`
}

// NewStudySession creates a new log entry for the given day.
// Returns an error if validation fails.
func NewStudySession(date Day, minutes int, activity Activity, notes string) (*StudySession, error) {
	session := &StudySession{
		ID:       uuid.New(),
		Date:     date,
		Minutes:  minutes,
		Activity: activity,
		Notes:    notes,
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the StudySession has valid data.
// Returns an error if any field fails validation.
func (s *StudySession) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSessionIDEmpty
	}

	if s.Date.IsZero() {
		return ErrSessionDateZero
	}

	if s.Minutes <= 0 {
		return ErrSessionMinutesInvalid
	}

	if !s.Activity.IsValid() {
		return ErrInvalidActivity
	}

	return nil
}

package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// State-specific validation errors
var (
	// ErrStateNil is returned when a nil state is validated or imported.
	ErrStateNil = errors.New("state cannot be nil")

	// ErrStateDuplicateCard is returned when two cards share an ID.
	ErrStateDuplicateCard = errors.New("state contains duplicate card ID")

	// ErrStateDuplicateSession is returned when two log entries share an ID.
	ErrStateDuplicateSession = errors.New("state contains duplicate session ID")
)

// State is the serializable union of the card collection and the study log.
// It is the unit of persistence: the coordinator loads one State at startup
// and saves one State after every mutation. Import replaces it wholesale;
// export serializes it verbatim, preserving log order.
type State struct {
	Cards    []*VocabCard   `json:"cards"`
	Sessions []StudySession `json:"sessions"`
}

// NewState returns an empty state, used on first run when the persistence
// collaborator has nothing to load.
func NewState() *State {
	return &State{
		Cards:    []*VocabCard{},
		Sessions: []StudySession{},
	}
}

// Validate checks every card and session in the state, plus cross-entity
// uniqueness of IDs. A state that fails validation must be rejected as a
// whole: no part of it may be applied.
func (s *State) Validate() error {
	if s == nil {
		return ErrStateNil
	}

	cardIDs := make(map[uuid.UUID]struct{}, len(s.Cards))
	for i, card := range s.Cards {
		if card == nil {
			return fmt.Errorf("card %d: %w", i, ErrCardIDEmpty)
		}
		if err := card.Validate(); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
		if _, ok := cardIDs[card.ID]; ok {
			return fmt.Errorf("%w: %s", ErrStateDuplicateCard, card.ID)
		}
		cardIDs[card.ID] = struct{}{}
	}

	sessionIDs := make(map[uuid.UUID]struct{}, len(s.Sessions))
	for i, session := range s.Sessions {
		if err := session.Validate(); err != nil {
			return fmt.Errorf("session %d: %w", i, err)
		}
		if _, ok := sessionIDs[session.ID]; ok {
			return fmt.Errorf("%w: %s", ErrStateDuplicateSession, session.ID)
		}
		sessionIDs[session.ID] = struct{}{}
	}

	return nil
}

// Clone returns a deep copy of the state. Mutating the copy never affects
// the original.
func (s *State) Clone() *State {
	clone := &State{
		Cards:    make([]*VocabCard, len(s.Cards)),
		Sessions: make([]StudySession, len(s.Sessions)),
	}
	for i, card := range s.Cards {
		clone.Cards[i] = card.Clone()
	}
	copy(clone.Sessions, s.Sessions)
	return clone
}

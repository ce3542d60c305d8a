package api

import (
	"time"

	"github.com/ejolly/lingolog/internal/domain"
)

// LoginRequest represents the login credentials.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the response for successful authentication.
type AuthResponse struct {
	Token string `json:"token"`
}

// CreateCardRequest represents the request body for creating a card.
type CreateCardRequest struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back"  validate:"required"`
}

// ReviewRequest represents the request body for submitting a review score.
type ReviewRequest struct {
	Quality int `json:"quality" validate:"gte=0,lte=5"`
}

// SpeechReviewRequest carries a recognized utterance to grade against a
// card's prompt text.
type SpeechReviewRequest struct {
	Recognized string `json:"recognized" validate:"required"`
}

// SpeechReviewResponse reports the derived grade alongside the
// rescheduled card.
type SpeechReviewResponse struct {
	Similarity float64      `json:"similarity"`
	Quality    int          `json:"quality"`
	Card       CardResponse `json:"card"`
}

// CardResponse represents the response data for a card.
type CardResponse struct {
	ID         string     `json:"id"`
	Front      string     `json:"front"`
	Back       string     `json:"back"`
	EaseFactor float64    `json:"ease_factor"`
	Interval   int        `json:"interval"`
	Due        domain.Day `json:"due"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CreateSessionRequest represents the request body for logging a study
// session. The date is always the server's current day; clients only
// supply what they did.
type CreateSessionRequest struct {
	Minutes  int    `json:"minutes"  validate:"required,gt=0"`
	Activity string `json:"activity" validate:"required"`
	Notes    string `json:"notes"`
}

// SessionResponse represents the response data for a study session.
type SessionResponse struct {
	ID       string     `json:"id"`
	Date     domain.Day `json:"date"`
	Minutes  int        `json:"minutes"`
	Activity string     `json:"activity"`
	Notes    string     `json:"notes,omitempty"`
}

// cardToResponse converts a domain card to its API representation.
func cardToResponse(card *domain.VocabCard) CardResponse {
	return CardResponse{
		ID:         card.ID.String(),
		Front:      card.Front,
		Back:       card.Back,
		EaseFactor: card.EaseFactor,
		Interval:   card.Interval,
		Due:        card.Due,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}
}

// cardsToResponse converts a slice of domain cards.
func cardsToResponse(cards []*domain.VocabCard) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i, card := range cards {
		out[i] = cardToResponse(card)
	}
	return out
}

// sessionToResponse converts a domain session to its API representation.
func sessionToResponse(session *domain.StudySession) SessionResponse {
	return SessionResponse{
		ID:       session.ID.String(),
		Date:     session.Date,
		Minutes:  session.Minutes,
		Activity: session.Activity.String(),
		Notes:    session.Notes,
	}
}

// sessionsToResponse converts a slice of domain sessions.
func sessionsToResponse(sessions []domain.StudySession) []SessionResponse {
	out := make([]SessionResponse, len(sessions))
	for i := range sessions {
		out[i] = sessionToResponse(&sessions[i])
	}
	return out
}

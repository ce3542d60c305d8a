package srs

import (
	"errors"
	"time"

	"github.com/ejolly/lingolog/internal/domain"
)

// Common errors
var (
	ErrNilCard        = errors.New("card cannot be nil")
	ErrInvalidQuality = errors.New("invalid quality score")
)

// Service defines the interface for spaced-repetition scheduling.
type Service interface {
	// Schedule computes a card's next state for one review with the given
	// quality score. The input card is not modified.
	Schedule(
		card *domain.VocabCard,
		quality domain.Quality,
		now time.Time,
	) (*domain.VocabCard, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// Schedule implements the Service interface. Input validation happens here,
// at the boundary: the pure transition functions assume a valid quality, so
// a caller bug surfaces immediately instead of being silently coerced.
func (s *defaultService) Schedule(
	card *domain.VocabCard,
	quality domain.Quality,
	now time.Time,
) (*domain.VocabCard, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if !quality.IsValid() {
		return nil, ErrInvalidQuality
	}

	return nextCard(card, quality, now, s.params), nil
}

package srs

import (
	"github.com/ejolly/lingolog/internal/domain"
)

// Params defines the configurable parameters for the SM-2 scheduler.
type Params struct {
	// MinEaseFactor is the floor for the ease factor after any review.
	MinEaseFactor float64

	// ResetInterval is the interval in days assigned after failed recall.
	ResetInterval int

	// GraduationInterval is the interval in days assigned on the first
	// successful review of a card still at the reset interval.
	GraduationInterval int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero-valued fields keep their defaults.
type ParamsConfig struct {
	MinEaseFactor      float64
	ResetInterval      int
	GraduationInterval int
}

// NewDefaultParams creates a new Params instance with the standard SM-2
// values: ease floor 1.3, failed cards reviewed again the next day, and a
// two-day interval on first graduation.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:      domain.MinEaseFactor,
		ResetInterval:      1,
		GraduationInterval: 2,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.ResetInterval > 0 {
		params.ResetInterval = config.ResetInterval
	}
	if config.GraduationInterval > 0 {
		params.GraduationInterval = config.GraduationInterval
	}

	return params
}

package srs

import (
	"math"
	"time"

	"github.com/ejolly/lingolog/internal/domain"
)

// nextEaseFactor computes the updated ease factor for a review.
//
// The ease factor is the per-card multiplier governing interval growth.
// The SM-2 adjustment rewards high quality scores and penalizes low ones:
//
//	EF' = EF + (0.1 - (5-q) * (0.08 + (5-q) * 0.02))
//
// The result is floored at params.MinEaseFactor so that a run of failures
// cannot shrink intervals toward zero indefinitely.
func nextEaseFactor(current float64, quality domain.Quality, params *Params) float64 {
	miss := float64(domain.MaxQuality - quality.Int())
	ef := current + (0.1 - miss*(0.08+miss*0.02))

	if ef < params.MinEaseFactor {
		ef = params.MinEaseFactor
	}

	return ef
}

// nextInterval computes the updated interval in days for a review.
//
// Failed recall (quality below passing) resets the interval so the card
// comes back almost immediately. A first successful review graduates the
// card to params.GraduationInterval; after that, intervals grow
// exponentially by the updated ease factor.
func nextInterval(current int, quality domain.Quality, newEaseFactor float64, params *Params) int {
	if !quality.Passing() {
		return params.ResetInterval
	}

	if current <= params.ResetInterval {
		return params.GraduationInterval
	}

	return int(math.Round(float64(current) * newEaseFactor))
}

// nextCard computes the card's full next state for a single review.
//
// It follows the immutable update pattern: the input card is never
// modified, a new value is returned. The review instant's time-of-day is
// discarded: the due date is "today plus the new interval" at day
// granularity, so the transition is deterministic given an injected now.
func nextCard(card *domain.VocabCard, quality domain.Quality, now time.Time, params *Params) *domain.VocabCard {
	today := domain.DayOf(now)

	next := card.Clone()
	next.EaseFactor = nextEaseFactor(card.EaseFactor, quality, params)
	next.Interval = nextInterval(card.Interval, quality, next.EaseFactor, params)
	next.Due = today.AddDays(next.Interval)
	next.UpdatedAt = now

	return next
}

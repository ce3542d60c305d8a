package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejolly/lingolog/internal/domain"
	"github.com/ejolly/lingolog/internal/domain/srs"
)

// reviewedAt fixes the review instant for deterministic due dates.
var reviewedAt = time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)

func newCard(t *testing.T, easeFactor float64, interval int) *domain.VocabCard {
	t.Helper()

	card, err := domain.NewVocabCard("hablar", "to speak", domain.DayOf(reviewedAt))
	require.NoError(t, err)
	card.EaseFactor = easeFactor
	card.Interval = interval
	return card
}

func mustQuality(t *testing.T, score int) domain.Quality {
	t.Helper()

	q, err := domain.NewQuality(score)
	require.NoError(t, err)
	return q
}

func TestScheduleEaseFactor(t *testing.T) {
	t.Parallel()

	service := srs.NewDefaultService()

	testCases := []struct {
		name       string
		easeFactor float64
		quality    int
		expected   float64
	}{
		{
			name:       "perfect recall raises ease factor",
			easeFactor: 2.5,
			quality:    5,
			expected:   2.6,
		},
		{
			name:       "good recall keeps ease factor",
			easeFactor: 2.5,
			quality:    4,
			expected:   2.5,
		},
		{
			name:       "barely passing lowers ease factor",
			easeFactor: 2.5,
			quality:    3,
			expected:   2.36,
		},
		{
			name:       "hard failure drops ease factor sharply",
			easeFactor: 2.5,
			quality:    1,
			expected:   1.96,
		},
		{
			name:       "ease factor never drops below the floor",
			easeFactor: 1.35,
			quality:    0,
			expected:   domain.MinEaseFactor,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			card := newCard(t, tc.easeFactor, 10)
			next, err := service.Schedule(card, mustQuality(t, tc.quality), reviewedAt)
			require.NoError(t, err)

			assert.InDelta(t, tc.expected, next.EaseFactor, 1e-9)
		})
	}
}

func TestScheduleInterval(t *testing.T) {
	t.Parallel()

	service := srs.NewDefaultService()

	testCases := []struct {
		name             string
		easeFactor       float64
		interval         int
		quality          int
		expectedInterval int
	}{
		{
			name:             "failed recall resets to one day",
			easeFactor:       2.5,
			interval:         30,
			quality:          2,
			expectedInterval: 1,
		},
		{
			name:             "first success graduates to two days",
			easeFactor:       2.5,
			interval:         1,
			quality:          5,
			expectedInterval: 2,
		},
		{
			name:             "established card grows by the new ease factor",
			easeFactor:       2.5,
			interval:         10,
			quality:          5,
			expectedInterval: 26, // round(10 * 2.6)
		},
		{
			name:             "interval growth uses the updated ease factor",
			easeFactor:       2.5,
			interval:         10,
			quality:          3,
			expectedInterval: 24, // round(10 * 2.36)
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			card := newCard(t, tc.easeFactor, tc.interval)
			next, err := service.Schedule(card, mustQuality(t, tc.quality), reviewedAt)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedInterval, next.Interval)
			assert.True(t, next.Due.Equal(domain.DayOf(reviewedAt).AddDays(tc.expectedInterval)),
				"due must be today plus the new interval, got %s", next.Due)
		})
	}
}

func TestScheduleDueIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	service := srs.NewDefaultService()
	card := newCard(t, 2.5, 1)

	morning := time.Date(2026, time.March, 10, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)

	fromMorning, err := service.Schedule(card, mustQuality(t, 4), morning)
	require.NoError(t, err)
	fromEvening, err := service.Schedule(card, mustQuality(t, 4), evening)
	require.NoError(t, err)

	assert.True(t, fromMorning.Due.Equal(fromEvening.Due))
}

func TestScheduleDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	service := srs.NewDefaultService()
	card := newCard(t, 2.5, 10)

	_, err := service.Schedule(card, mustQuality(t, 5), reviewedAt)
	require.NoError(t, err)

	assert.Equal(t, 2.5, card.EaseFactor)
	assert.Equal(t, 10, card.Interval)
}

func TestScheduleRepeatedFailuresKeepValidState(t *testing.T) {
	t.Parallel()

	service := srs.NewDefaultService()
	card := newCard(t, 2.5, 30)

	for i := 0; i < 10; i++ {
		next, err := service.Schedule(card, mustQuality(t, 0), reviewedAt)
		require.NoError(t, err)
		require.NoError(t, next.Validate())

		assert.GreaterOrEqual(t, next.EaseFactor, domain.MinEaseFactor)
		assert.Equal(t, 1, next.Interval)
		card = next
	}

	assert.InDelta(t, domain.MinEaseFactor, card.EaseFactor, 1e-9)
}

func TestScheduleBoundaryValidation(t *testing.T) {
	t.Parallel()

	service := srs.NewDefaultService()

	t.Run("nil card", func(t *testing.T) {
		t.Parallel()

		_, err := service.Schedule(nil, mustQuality(t, 3), reviewedAt)
		assert.ErrorIs(t, err, srs.ErrNilCard)
	})

	t.Run("out-of-range quality", func(t *testing.T) {
		t.Parallel()

		card := newCard(t, 2.5, 1)
		_, err := service.Schedule(card, domain.Quality(7), reviewedAt)
		assert.ErrorIs(t, err, srs.ErrInvalidQuality)
	})
}

func TestNewServiceWithParams(t *testing.T) {
	t.Parallel()

	params := srs.NewParams(srs.ParamsConfig{
		ResetInterval:      2,
		GraduationInterval: 4,
	})
	service := srs.NewServiceWithParams(params)

	t.Run("custom reset interval", func(t *testing.T) {
		t.Parallel()

		card := newCard(t, 2.5, 30)
		next, err := service.Schedule(card, mustQuality(t, 0), reviewedAt)
		require.NoError(t, err)
		assert.Equal(t, 2, next.Interval)
	})

	t.Run("custom graduation interval", func(t *testing.T) {
		t.Parallel()

		card := newCard(t, 2.5, 2)
		next, err := service.Schedule(card, mustQuality(t, 4), reviewedAt)
		require.NoError(t, err)
		assert.Equal(t, 4, next.Interval)
	})
}

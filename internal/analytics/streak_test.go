package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ejolly/lingolog/internal/analytics"
	"github.com/ejolly/lingolog/internal/domain"
)

func TestStreaks(t *testing.T) {
	t.Parallel()

	engine := analytics.NewEngine(analytics.Config{})
	today := domain.NewDay(2026, time.May, 10)

	t.Run("empty log", func(t *testing.T) {
		t.Parallel()

		current, best := engine.Streaks(nil, today)
		assert.Zero(t, current)
		assert.Zero(t, best)
	})

	t.Run("unbroken run through today", func(t *testing.T) {
		t.Parallel()

		log := []domain.StudySession{
			session(t, today, 10, domain.ActivityVocab),
			session(t, today.AddDays(-1), 10, domain.ActivityVocab),
			session(t, today.AddDays(-2), 10, domain.ActivityVocab),
		}

		current, best := engine.Streaks(log, today)
		assert.Equal(t, 3, current)
		assert.Equal(t, 3, best)
	})

	t.Run("no session today means zero current streak", func(t *testing.T) {
		t.Parallel()

		log := []domain.StudySession{
			session(t, today.AddDays(-1), 10, domain.ActivityVocab),
			session(t, today.AddDays(-2), 10, domain.ActivityVocab),
		}

		current, best := engine.Streaks(log, today)
		assert.Zero(t, current)
		assert.Equal(t, 2, best)
	})

	t.Run("gap splits runs and best takes the longest", func(t *testing.T) {
		t.Parallel()

		log := []domain.StudySession{
			// current run: today and yesterday
			session(t, today, 10, domain.ActivityVocab),
			session(t, today.AddDays(-1), 10, domain.ActivityVocab),
			// older, longer run separated by a gap at -2
			session(t, today.AddDays(-3), 10, domain.ActivityVocab),
			session(t, today.AddDays(-4), 10, domain.ActivityVocab),
			session(t, today.AddDays(-5), 10, domain.ActivityVocab),
		}

		current, best := engine.Streaks(log, today)
		assert.Equal(t, 2, current)
		assert.Equal(t, 3, best)
	})

	t.Run("multiple sessions on one day count once", func(t *testing.T) {
		t.Parallel()

		log := []domain.StudySession{
			session(t, today, 10, domain.ActivityVocab),
			session(t, today, 50, domain.ActivityListening),
		}

		current, best := engine.Streaks(log, today)
		assert.Equal(t, 1, current)
		assert.Equal(t, 1, best)
	})

	t.Run("best is never below current", func(t *testing.T) {
		t.Parallel()

		log := []domain.StudySession{
			session(t, today, 10, domain.ActivityVocab),
			session(t, today.AddDays(-1), 10, domain.ActivityVocab),
			session(t, today.AddDays(-2), 10, domain.ActivityVocab),
			session(t, today.AddDays(-3), 10, domain.ActivityVocab),
		}

		current, best := engine.Streaks(log, today)
		assert.GreaterOrEqual(t, best, current)
	})

	t.Run("sessions beyond the lookback horizon are ignored", func(t *testing.T) {
		t.Parallel()

		short := analytics.NewEngine(analytics.Config{StreakLookbackDays: 5})
		log := []domain.StudySession{
			session(t, today.AddDays(-5), 10, domain.ActivityVocab), // outside horizon of 5
			session(t, today.AddDays(-4), 10, domain.ActivityVocab), // oldest day inside
		}

		_, best := short.Streaks(log, today)
		assert.Equal(t, 1, best)
	})
}

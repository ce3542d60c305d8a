package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejolly/lingolog/internal/analytics"
	"github.com/ejolly/lingolog/internal/domain"
)

func TestHeatmap(t *testing.T) {
	t.Parallel()

	engine := analytics.NewEngine(analytics.Config{WeekStart: weekday(time.Monday)})

	// 2026-05-06 is a Wednesday.
	today := domain.NewDay(2026, time.May, 6)
	thisMonday := domain.NewDay(2026, time.May, 4)

	t.Run("week-major layout with partial final week", func(t *testing.T) {
		t.Parallel()

		log := []domain.StudySession{
			session(t, today, 40, domain.ActivityVocab),
			session(t, thisMonday.AddDays(-7), 25, domain.ActivityReading),
		}

		heatmap := engine.Heatmap(log, today, 2)
		require.Len(t, heatmap, 2)

		previousWeek := heatmap[0]
		assert.True(t, previousWeek.Start.Equal(thisMonday.AddDays(-7)))
		require.Len(t, previousWeek.Days, 7, "completed week has all seven days")
		assert.Equal(t, 25, previousWeek.Days[0].Minutes)
		assert.Equal(t, time.Monday, previousWeek.Days[0].Weekday)

		currentWeek := heatmap[1]
		assert.True(t, currentWeek.Start.Equal(thisMonday))
		require.Len(t, currentWeek.Days, 3, "current week stops at today")
		assert.True(t, currentWeek.Days[2].Date.Equal(today))
		assert.Equal(t, 40, currentWeek.Days[2].Minutes)
	})

	t.Run("days with no sessions read zero", func(t *testing.T) {
		t.Parallel()

		heatmap := engine.Heatmap(nil, today, 1)
		require.Len(t, heatmap, 1)
		for _, day := range heatmap[0].Days {
			assert.Zero(t, day.Minutes)
		}
	})

	t.Run("non-positive weeks yields empty heatmap", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, engine.Heatmap(nil, today, 0))
	})

	t.Run("weeks are contiguous", func(t *testing.T) {
		t.Parallel()

		heatmap := engine.Heatmap(nil, today, 4)
		require.Len(t, heatmap, 4)
		for i := 1; i < len(heatmap); i++ {
			assert.Equal(t, 7, heatmap[i-1].Start.DaysUntil(heatmap[i].Start))
		}
	})
}

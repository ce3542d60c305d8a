package analytics

import (
	"time"

	"github.com/ejolly/lingolog/internal/domain"
)

// HeatmapDay is one cell of the calendar heatmap.
type HeatmapDay struct {
	Date    domain.Day   `json:"date"`
	Weekday time.Weekday `json:"weekday"`
	Minutes int          `json:"minutes"`
}

// HeatmapWeek is one week-major row of the heatmap.
type HeatmapWeek struct {
	Start domain.Day   `json:"start"`
	Days  []HeatmapDay `json:"days"`
}

// Heatmap reshapes daily totals into week-major order for calendar-style
// rendering. The horizon spans the given number of trailing weeks: it opens
// at the week-start of the week that lies weeks-1 weeks before today's week
// and closes at today, so the final week is partial until the week ends.
func (e *Engine) Heatmap(log []domain.StudySession, today domain.Day, weeks int) []HeatmapWeek {
	if weeks <= 0 {
		return []HeatmapWeek{}
	}

	totals := e.DailyTotals(log)
	firstWeekStart := e.weekStartOf(today).AddDays(-7 * (weeks - 1))

	heatmap := make([]HeatmapWeek, 0, weeks)
	for w := 0; w < weeks; w++ {
		start := firstWeekStart.AddDays(7 * w)
		week := HeatmapWeek{Start: start, Days: make([]HeatmapDay, 0, 7)}
		for i := 0; i < 7; i++ {
			day := start.AddDays(i)
			if day.After(today) {
				break
			}
			week.Days = append(week.Days, HeatmapDay{
				Date:    day,
				Weekday: day.Weekday(),
				Minutes: totals[day],
			})
		}
		heatmap = append(heatmap, week)
	}

	return heatmap
}

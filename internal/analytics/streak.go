package analytics

import (
	"github.com/ejolly/lingolog/internal/domain"
)

// Streaks computes the current and best streaks of consecutive study days
// within the engine's bounded lookback horizon ending at today.
//
// Both streaks key only on the presence of a day in the log, not on
// minutes: multiple sessions on one day count once. The current streak
// counts backward from today and stops at the first day with no session,
// so a day with no session yet means a current streak of zero. The best
// streak is the longest run anywhere in the horizon, independent of where
// today falls in it.
func (e *Engine) Streaks(log []domain.StudySession, today domain.Day) (current, best int) {
	studied := make(map[domain.Day]struct{})
	horizon := today.AddDays(-(e.streakLookbackDays - 1))
	for _, session := range log {
		if session.Date.Before(horizon) || session.Date.After(today) {
			continue
		}
		studied[session.Date] = struct{}{}
	}

	for day := today; !day.Before(horizon); day = day.AddDays(-1) {
		if _, ok := studied[day]; !ok {
			break
		}
		current++
	}

	run := 0
	for day := horizon; !day.After(today); day = day.AddDays(1) {
		if _, ok := studied[day]; ok {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}

	return current, best
}

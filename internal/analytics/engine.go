package analytics

import (
	"time"

	"github.com/ejolly/lingolog/internal/domain"
)

// Defaults for engine configuration.
const (
	// DefaultStreakLookbackDays bounds how far back streak scans reach.
	DefaultStreakLookbackDays = 365

	// DefaultWeekStart is the weekday on which goal weeks begin.
	DefaultWeekStart = time.Monday

	// breakdownWindowDays is the size of the activity-breakdown window,
	// inclusive of today.
	breakdownWindowDays = 7
)

// Config holds the engine's tunable parameters. Unset fields keep their
// defaults.
type Config struct {
	// StreakLookbackDays is the bounded horizon for streak computation.
	StreakLookbackDays int

	// WeekStart is the fixed weekday on which a goal week begins. Nil
	// keeps the default; time.Weekday's zero value is Sunday, a valid
	// weekday, so "unset" needs its own representation.
	WeekStart *time.Weekday
}

// Engine derives read-only views from the study log. Every method is a pure
// function of the log plus an injected reference day, so one derivation pass
// agrees on a single "today". The engine never reads the clock itself.
// The log is never mutated.
type Engine struct {
	streakLookbackDays int
	weekStart          time.Weekday
}

// NewEngine creates an Engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	lookback := cfg.StreakLookbackDays
	if lookback <= 0 {
		lookback = DefaultStreakLookbackDays
	}

	weekStart := DefaultWeekStart
	if cfg.WeekStart != nil && *cfg.WeekStart >= time.Sunday && *cfg.WeekStart <= time.Saturday {
		weekStart = *cfg.WeekStart
	}

	return &Engine{
		streakLookbackDays: lookback,
		weekStart:          weekStart,
	}
}

// DayTotal is the summed minutes for a single calendar day.
type DayTotal struct {
	Date    domain.Day `json:"date"`
	Minutes int        `json:"minutes"`
}

// ActivityTotal is the summed minutes for one activity kind.
type ActivityTotal struct {
	Activity domain.Activity `json:"activity"`
	Minutes  int             `json:"minutes"`
}

// GoalProgress reports progress against a minutes-per-week goal. During a
// partial week the ratio is still divided by the full goal, so it sits
// below 1.0 until the week's minutes catch up.
type GoalProgress struct {
	WeekStart domain.Day `json:"week_start"`
	Minutes   int        `json:"minutes"`
	Goal      int        `json:"goal"`
	Ratio     float64    `json:"ratio"`
}

// DailyTotals returns the mapping from calendar day to summed minutes
// across all sessions on that day. Days with no sessions are absent;
// consumers treat absence as zero.
func (e *Engine) DailyTotals(log []domain.StudySession) map[domain.Day]int {
	totals := make(map[domain.Day]int)
	for _, session := range log {
		totals[session.Date] += session.Minutes
	}
	return totals
}

// RollingSeries produces per-day totals for the window of the given size
// ending at today, oldest day first. The series always has exactly window
// entries: days absent from the log are zero-filled.
func (e *Engine) RollingSeries(log []domain.StudySession, today domain.Day, window int) []DayTotal {
	if window <= 0 {
		return []DayTotal{}
	}

	totals := e.DailyTotals(log)

	series := make([]DayTotal, 0, window)
	start := today.AddDays(-(window - 1))
	for i := 0; i < window; i++ {
		day := start.AddDays(i)
		series = append(series, DayTotal{Date: day, Minutes: totals[day]})
	}

	return series
}

// ActivityBreakdown sums minutes per activity kind over the trailing seven
// days inclusive of today. The result enumerates all seven kinds in
// canonical order; kinds with no minutes report zero.
func (e *Engine) ActivityBreakdown(log []domain.StudySession, today domain.Day) []ActivityTotal {
	start := today.AddDays(-(breakdownWindowDays - 1))

	byKind := make(map[domain.Activity]int, len(domain.Activities()))
	for _, session := range log {
		if session.Date.Before(start) || session.Date.After(today) {
			continue
		}
		byKind[session.Activity] += session.Minutes
	}

	breakdown := make([]ActivityTotal, 0, len(domain.Activities()))
	for _, kind := range domain.Activities() {
		breakdown = append(breakdown, ActivityTotal{Activity: kind, Minutes: byKind[kind]})
	}

	return breakdown
}

// WeeklyGoal sums the minutes of every session falling in the week
// containing today and reports the ratio against the goal.
func (e *Engine) WeeklyGoal(log []domain.StudySession, today domain.Day, goalMinutes int) GoalProgress {
	weekStart := e.weekStartOf(today)
	weekEnd := weekStart.AddDays(6)

	minutes := 0
	for _, session := range log {
		if session.Date.Before(weekStart) || session.Date.After(weekEnd) {
			continue
		}
		minutes += session.Minutes
	}

	ratio := 0.0
	if goalMinutes > 0 {
		ratio = float64(minutes) / float64(goalMinutes)
	}

	return GoalProgress{
		WeekStart: weekStart,
		Minutes:   minutes,
		Goal:      goalMinutes,
		Ratio:     ratio,
	}
}

// weekStartOf returns the most recent configured week-start weekday on or
// before the given day.
func (e *Engine) weekStartOf(day domain.Day) domain.Day {
	offset := (int(day.Weekday()) - int(e.weekStart) + 7) % 7
	return day.AddDays(-offset)
}

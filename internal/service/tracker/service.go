// Package tracker implements the coordinator of the study tracker: it owns
// the in-memory card collection and the append-only study log, wires review
// and logging actions to the scheduler and the log, and exposes the derived
// analytics views. It is the only component talking to the persistence
// collaborator.
package tracker

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ejolly/lingolog/internal/analytics"
	"github.com/ejolly/lingolog/internal/domain"
)

// Common tracker service errors
var (
	// ErrCardNotFound indicates a review targeted a card ID absent from the
	// collection. Surfaced to the caller, never silently ignored.
	ErrCardNotFound = errors.New("card not found")

	// ErrInvalidImport indicates an imported state document failed
	// validation; the prior in-memory state is left untouched.
	ErrInvalidImport = errors.New("imported state is invalid")
)

// Summary is the dashboard view: today's total, streaks, weekly-goal
// progress, and card counts, all derived against one reference day.
type Summary struct {
	Today         domain.Day             `json:"today"`
	TodayMinutes  int                    `json:"today_minutes"`
	CurrentStreak int                    `json:"current_streak"`
	BestStreak    int                    `json:"best_streak"`
	WeeklyGoal    analytics.GoalProgress `json:"weekly_goal"`
	TotalCards    int                    `json:"total_cards"`
	DueCards      int                    `json:"due_cards"`
}

// TrackerService is the coordinator's contract with the UI layer.
//
// Mutating operations (AddCard, ReviewCard, AddSession, Import) each
// perform a single atomic update and then persist the full state
// fire-and-forget: a persistence failure is logged, never propagated,
// because the in-memory session must stay usable when durability is
// temporarily broken.
//
// Read operations compute against a snapshot of the state with a single
// reference "today", so the numbers inside one response are mutually
// consistent.
type TrackerService interface {
	// AddCard creates a new vocabulary card due today.
	AddCard(ctx context.Context, front, back string) (*domain.VocabCard, error)

	// GetCard retrieves one card by ID.
	// Returns ErrCardNotFound if the ID is absent.
	GetCard(ctx context.Context, cardID uuid.UUID) (*domain.VocabCard, error)

	// ListCards returns all cards, ordered by creation time.
	ListCards(ctx context.Context) ([]*domain.VocabCard, error)

	// DueCards returns the cards eligible for review today, most overdue
	// first.
	DueCards(ctx context.Context) ([]*domain.VocabCard, error)

	// ReviewCard applies one review outcome to a card and stores the
	// rescheduled result. Returns ErrCardNotFound for an unknown ID and
	// domain.ErrQualityOutOfRange for an out-of-range score.
	ReviewCard(ctx context.Context, cardID uuid.UUID, quality domain.Quality) (*domain.VocabCard, error)

	// AddSession appends one entry to the study log and returns it.
	// Invalid minutes or activity kinds are rejected at this boundary.
	AddSession(ctx context.Context, minutes int, activity domain.Activity, notes string) (*domain.StudySession, error)

	// ListSessions returns the study log in append order.
	ListSessions(ctx context.Context) ([]domain.StudySession, error)

	// Summary returns the dashboard view.
	Summary(ctx context.Context) (*Summary, error)

	// RollingSeries returns per-day totals for the trailing window of the
	// given size, oldest first, zero-filled to exactly window entries.
	RollingSeries(ctx context.Context, window int) ([]analytics.DayTotal, error)

	// ActivityBreakdown returns minutes per activity kind over the
	// trailing seven days, all seven kinds in canonical order.
	ActivityBreakdown(ctx context.Context) ([]analytics.ActivityTotal, error)

	// Heatmap returns week-major per-day totals for the given number of
	// trailing weeks.
	Heatmap(ctx context.Context, weeks int) ([]analytics.HeatmapWeek, error)

	// Export returns a deep copy of the full state for serialization.
	Export(ctx context.Context) (*domain.State, error)

	// Import replaces the full state wholesale. A state that fails
	// validation is rejected with ErrInvalidImport and the prior state is
	// kept.
	Import(ctx context.Context, state *domain.State) error
}

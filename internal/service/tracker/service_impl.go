package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ejolly/lingolog/internal/analytics"
	"github.com/ejolly/lingolog/internal/config"
	"github.com/ejolly/lingolog/internal/domain"
	"github.com/ejolly/lingolog/internal/domain/srs"
	"github.com/ejolly/lingolog/internal/platform/logger"
	"github.com/ejolly/lingolog/internal/redact"
	"github.com/ejolly/lingolog/internal/store"
)

// saveTimeout bounds each background persistence attempt.
const saveTimeout = 10 * time.Second

// Verify interface compliance at compile time
var _ TrackerService = (*trackerServiceImpl)(nil)

// trackerServiceImpl implements the TrackerService interface.
//
// The card collection and the study log are owned exclusively by this
// struct for the process lifetime and are mutated only through the
// interface's entry points. The HTTP host dispatches handlers on multiple
// goroutines, so a mutex serializes mutations; reads take the read lock
// just long enough to snapshot.
type trackerServiceImpl struct {
	mu       sync.RWMutex
	cards    map[uuid.UUID]*domain.VocabCard
	sessions []domain.StudySession

	stateStore store.StateStore
	srsService srs.Service
	engine     *analytics.Engine
	studyCfg   config.StudyConfig
	logger     *slog.Logger
	timeFunc   func() time.Time // Injectable for testing

	// saves tracks in-flight background persistence for clean shutdown.
	saves sync.WaitGroup

	// saveMu guards pending. Saves are coalesced: only the latest snapshot
	// matters, and exactly one saver goroutine drains it, so snapshots can
	// never be persisted out of order.
	saveMu  sync.Mutex
	pending *domain.State
	saving  bool
}

// NewTrackerService creates the coordinator and performs the startup load.
// A missing persisted state (first run) initializes empty collections; any
// other load error is fatal, since silently starting empty would shadow
// real data.
func NewTrackerService(
	ctx context.Context,
	stateStore store.StateStore,
	srsService srs.Service,
	engine *analytics.Engine,
	studyCfg config.StudyConfig,
	logger *slog.Logger,
) (TrackerService, error) {
	if stateStore == nil {
		panic("stateStore cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}
	if engine == nil {
		panic("engine cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &trackerServiceImpl{
		cards:      make(map[uuid.UUID]*domain.VocabCard),
		sessions:   []domain.StudySession{},
		stateStore: stateStore,
		srsService: srsService,
		engine:     engine,
		studyCfg:   studyCfg,
		logger:     logger.With(slog.String("component", "tracker_service")),
		timeFunc:   time.Now,
	}

	state, err := stateStore.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrStateNotFound) {
			s.logger.Info("no persisted state found, starting empty")
			return s, nil
		}
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("persisted state is invalid: %w", err)
	}

	s.replaceLocked(state)
	s.logger.Info("state loaded",
		slog.Int("cards", len(state.Cards)),
		slog.Int("sessions", len(state.Sessions)))

	return s, nil
}

// AddCard implements TrackerService.AddCard.
func (s *trackerServiceImpl) AddCard(ctx context.Context, front, back string) (*domain.VocabCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	today := domain.DayOf(s.timeFunc())

	card, err := domain.NewVocabCard(front, back, today)
	if err != nil {
		log.Warn("card creation rejected", slog.String("error", err.Error()))
		return nil, err
	}

	s.mu.Lock()
	s.cards[card.ID] = card
	s.queueSaveLocked()
	s.mu.Unlock()

	log.Debug("card added",
		slog.String("card_id", card.ID.String()),
		slog.String("due", card.Due.String()))
	return card.Clone(), nil
}

// GetCard implements TrackerService.GetCard.
func (s *trackerServiceImpl) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.VocabCard, error) {
	s.mu.RLock()
	card, ok := s.cards[cardID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}
	return card.Clone(), nil
}

// ListCards implements TrackerService.ListCards.
func (s *trackerServiceImpl) ListCards(ctx context.Context) ([]*domain.VocabCard, error) {
	s.mu.RLock()
	cards := make([]*domain.VocabCard, 0, len(s.cards))
	for _, card := range s.cards {
		cards = append(cards, card.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(cards, func(i, j int) bool {
		if cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].ID.String() < cards[j].ID.String()
		}
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})

	return cards, nil
}

// DueCards implements TrackerService.DueCards.
func (s *trackerServiceImpl) DueCards(ctx context.Context) ([]*domain.VocabCard, error) {
	today := domain.DayOf(s.timeFunc())

	s.mu.RLock()
	due := make([]*domain.VocabCard, 0)
	for _, card := range s.cards {
		if card.IsDue(today) {
			due = append(due, card.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].Due.Equal(due[j].Due) {
			return due[i].ID.String() < due[j].ID.String()
		}
		return due[i].Due.Before(due[j].Due)
	})

	return due, nil
}

// ReviewCard implements TrackerService.ReviewCard.
// The update replaces exactly one card: either the whole review applies or
// nothing does.
func (s *trackerServiceImpl) ReviewCard(
	ctx context.Context,
	cardID uuid.UUID,
	quality domain.Quality,
) (*domain.VocabCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Boundary validation: the scheduler's transition function assumes a
	// valid score, so reject bad input before it gets there.
	if !quality.IsValid() {
		log.Warn("review rejected: quality out of range",
			slog.String("card_id", cardID.String()),
			slog.Int("quality", quality.Int()))
		return nil, fmt.Errorf("%w: got %d", domain.ErrQualityOutOfRange, quality.Int())
	}

	now := s.timeFunc()

	s.mu.Lock()
	card, ok := s.cards[cardID]
	if !ok {
		s.mu.Unlock()
		log.Warn("review targeted unknown card",
			slog.String("card_id", cardID.String()))
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}

	rescheduled, err := s.srsService.Schedule(card, quality, now)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to schedule review: %w", err)
	}

	s.cards[cardID] = rescheduled
	s.queueSaveLocked()
	s.mu.Unlock()

	log.Debug("card reviewed",
		slog.String("card_id", cardID.String()),
		slog.Int("quality", quality.Int()),
		slog.Float64("ease_factor", rescheduled.EaseFactor),
		slog.Int("interval", rescheduled.Interval),
		slog.String("due", rescheduled.Due.String()))

	return rescheduled.Clone(), nil
}

// AddSession implements TrackerService.AddSession.
func (s *trackerServiceImpl) AddSession(
	ctx context.Context,
	minutes int,
	activity domain.Activity,
	notes string,
) (*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	today := domain.DayOf(s.timeFunc())

	session, err := domain.NewStudySession(today, minutes, activity, notes)
	if err != nil {
		log.Warn("session rejected", slog.String("error", err.Error()))
		return nil, err
	}

	s.mu.Lock()
	s.sessions = append(s.sessions, *session)
	s.queueSaveLocked()
	s.mu.Unlock()

	log.Debug("session logged",
		slog.String("session_id", session.ID.String()),
		slog.Int("minutes", session.Minutes),
		slog.String("activity", session.Activity.String()))

	return session, nil
}

// ListSessions implements TrackerService.ListSessions.
func (s *trackerServiceImpl) ListSessions(ctx context.Context) ([]domain.StudySession, error) {
	s.mu.RLock()
	sessions := make([]domain.StudySession, len(s.sessions))
	copy(sessions, s.sessions)
	s.mu.RUnlock()

	return sessions, nil
}

// Summary implements TrackerService.Summary.
// Every number is derived against the same reference day.
func (s *trackerServiceImpl) Summary(ctx context.Context) (*Summary, error) {
	today := domain.DayOf(s.timeFunc())

	s.mu.RLock()
	sessions := make([]domain.StudySession, len(s.sessions))
	copy(sessions, s.sessions)
	totalCards := len(s.cards)
	dueCards := 0
	for _, card := range s.cards {
		if card.IsDue(today) {
			dueCards++
		}
	}
	s.mu.RUnlock()

	current, best := s.engine.Streaks(sessions, today)
	goal := s.engine.WeeklyGoal(sessions, today, s.studyCfg.WeeklyGoalMinutes)

	return &Summary{
		Today:         today,
		TodayMinutes:  s.engine.DailyTotals(sessions)[today],
		CurrentStreak: current,
		BestStreak:    best,
		WeeklyGoal:    goal,
		TotalCards:    totalCards,
		DueCards:      dueCards,
	}, nil
}

// RollingSeries implements TrackerService.RollingSeries.
func (s *trackerServiceImpl) RollingSeries(ctx context.Context, window int) ([]analytics.DayTotal, error) {
	if window <= 0 {
		window = s.studyCfg.RollingWindowDays
	}
	sessions, today := s.snapshotSessions()
	return s.engine.RollingSeries(sessions, today, window), nil
}

// ActivityBreakdown implements TrackerService.ActivityBreakdown.
func (s *trackerServiceImpl) ActivityBreakdown(ctx context.Context) ([]analytics.ActivityTotal, error) {
	sessions, today := s.snapshotSessions()
	return s.engine.ActivityBreakdown(sessions, today), nil
}

// Heatmap implements TrackerService.Heatmap.
func (s *trackerServiceImpl) Heatmap(ctx context.Context, weeks int) ([]analytics.HeatmapWeek, error) {
	if weeks <= 0 {
		weeks = s.studyCfg.HeatmapWeeks
	}
	sessions, today := s.snapshotSessions()
	return s.engine.Heatmap(sessions, today, weeks), nil
}

// Export implements TrackerService.Export.
func (s *trackerServiceImpl) Export(ctx context.Context) (*domain.State, error) {
	s.mu.RLock()
	snapshot := s.snapshotLocked()
	s.mu.RUnlock()

	return snapshot, nil
}

// Import implements TrackerService.Import.
// Validation happens before anything is touched: a malformed document is
// rejected wholesale and the prior state survives.
func (s *trackerServiceImpl) Import(ctx context.Context, state *domain.State) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := state.Validate(); err != nil {
		log.Warn("import rejected", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	s.mu.Lock()
	s.replaceLocked(state.Clone())
	s.queueSaveLocked()
	s.mu.Unlock()

	log.Info("state imported",
		slog.Int("cards", len(state.Cards)),
		slog.Int("sessions", len(state.Sessions)))
	return nil
}

// Close waits for in-flight background saves, so shutdown does not drop the
// last mutation.
func (s *trackerServiceImpl) Close() {
	s.saves.Wait()
}

// replaceLocked swaps in a new state. Callers hold the write lock (or have
// exclusive access during construction).
func (s *trackerServiceImpl) replaceLocked(state *domain.State) {
	cards := make(map[uuid.UUID]*domain.VocabCard, len(state.Cards))
	for _, card := range state.Cards {
		cards[card.ID] = card
	}
	s.cards = cards
	s.sessions = state.Sessions
}

// snapshotLocked builds a deep copy of the full state. Callers hold at
// least the read lock. Cards are ordered by creation time so the exported
// document is stable; the log keeps append order.
func (s *trackerServiceImpl) snapshotLocked() *domain.State {
	state := &domain.State{
		Cards:    make([]*domain.VocabCard, 0, len(s.cards)),
		Sessions: make([]domain.StudySession, len(s.sessions)),
	}
	for _, card := range s.cards {
		state.Cards = append(state.Cards, card.Clone())
	}
	sort.Slice(state.Cards, func(i, j int) bool {
		if state.Cards[i].CreatedAt.Equal(state.Cards[j].CreatedAt) {
			return state.Cards[i].ID.String() < state.Cards[j].ID.String()
		}
		return state.Cards[i].CreatedAt.Before(state.Cards[j].CreatedAt)
	})
	copy(state.Sessions, s.sessions)
	return state
}

// snapshotSessions copies the log and fixes the reference day for one
// derivation pass.
func (s *trackerServiceImpl) snapshotSessions() ([]domain.StudySession, domain.Day) {
	today := domain.DayOf(s.timeFunc())

	s.mu.RLock()
	sessions := make([]domain.StudySession, len(s.sessions))
	copy(sessions, s.sessions)
	s.mu.RUnlock()

	return sessions, today
}

// queueSaveLocked snapshots the current state and schedules it for
// background saving. Callers hold the write lock, which keeps pending
// snapshots in mutation order; rapid mutations coalesce into the latest
// snapshot. Failures are logged and swallowed: loss of durability must not
// block in-memory operation.
func (s *trackerServiceImpl) queueSaveLocked() {
	snapshot := s.snapshotLocked()

	s.saveMu.Lock()
	s.pending = snapshot
	start := !s.saving
	if start {
		s.saving = true
	}
	s.saveMu.Unlock()

	if start {
		s.saves.Add(1)
		go s.drainSaves()
	}
}

// drainSaves writes pending snapshots until none remain. Only one instance
// runs at a time.
func (s *trackerServiceImpl) drainSaves() {
	defer s.saves.Done()

	for {
		s.saveMu.Lock()
		snapshot := s.pending
		s.pending = nil
		if snapshot == nil {
			s.saving = false
			s.saveMu.Unlock()
			return
		}
		s.saveMu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := s.stateStore.Save(ctx, snapshot)
		cancel()
		if err != nil {
			s.logger.Warn("state save failed, continuing in memory",
				slog.String("error", redact.Error(err)))
		}
	}
}

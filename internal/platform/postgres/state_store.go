package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ejolly/lingolog/internal/domain"
	"github.com/ejolly/lingolog/internal/platform/logger"
	"github.com/ejolly/lingolog/internal/store"
)

// PostgresStateStore implements the store.StateStore interface using a
// PostgreSQL database as the storage backend. State is persisted wholesale:
// every save replaces the full card collection and study log inside one
// transaction, matching the coordinator's load-once/save-after-mutation
// contract.
type PostgresStateStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresStateStore creates a new PostgreSQL implementation of the
// StateStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, a default
// logger will be used.
func NewPostgresStateStore(db *sql.DB, logger *slog.Logger) *PostgresStateStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStateStore{
		db:     db,
		logger: logger.With(slog.String("component", "state_store")),
	}
}

// Ensure PostgresStateStore implements store.StateStore interface
var _ store.StateStore = (*PostgresStateStore)(nil)

// Load implements store.StateStore.Load.
// It reads the full card collection and study log. Log order is restored
// from the persisted sequence number, preserving append order exactly.
// Returns store.ErrStateNotFound when both tables are empty (first run).
func (s *PostgresStateStore) Load(ctx context.Context) (*domain.State, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.loadCards(ctx, s.db)
	if err != nil {
		log.Error("failed to load cards", slog.String("error", err.Error()))
		return nil, store.NewStoreError("state", "load", "failed to load cards", MapError(err))
	}

	sessions, err := s.loadSessions(ctx, s.db)
	if err != nil {
		log.Error("failed to load sessions", slog.String("error", err.Error()))
		return nil, store.NewStoreError("state", "load", "failed to load sessions", MapError(err))
	}

	if len(cards) == 0 && len(sessions) == 0 {
		return nil, store.ErrStateNotFound
	}

	log.Debug("state loaded",
		slog.Int("cards", len(cards)),
		slog.Int("sessions", len(sessions)))

	return &domain.State{Cards: cards, Sessions: sessions}, nil
}

// Save implements store.StateStore.Save.
// The previous state is replaced wholesale inside a single transaction, so
// a failed save leaves the previously persisted state intact.
func (s *PostgresStateStore) Save(ctx context.Context, state *domain.State) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := state.Validate(); err != nil {
		log.Warn("state validation failed during save",
			slog.String("error", err.Error()))
		return store.NewStoreError("state", "save", "invalid state", err)
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.saveCards(ctx, tx, state.Cards); err != nil {
			return err
		}
		return s.saveSessions(ctx, tx, state.Sessions)
	})
	if err != nil {
		log.Error("failed to save state", slog.String("error", err.Error()))
		return store.NewStoreError("state", "save", "transaction failed", MapError(err))
	}

	log.Debug("state saved",
		slog.Int("cards", len(state.Cards)),
		slog.Int("sessions", len(state.Sessions)))
	return nil
}

func (s *PostgresStateStore) loadCards(ctx context.Context, q store.DBTX) ([]*domain.VocabCard, error) {
	query := `
		SELECT id, front, back, ease_factor, interval_days, due, created_at, updated_at
		FROM vocab_cards
		ORDER BY created_at, id
	`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	cards := []*domain.VocabCard{}
	for rows.Next() {
		var card domain.VocabCard
		var due sql.NullTime
		if err := rows.Scan(
			&card.ID,
			&card.Front,
			&card.Back,
			&card.EaseFactor,
			&card.Interval,
			&due,
			&card.CreatedAt,
			&card.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if due.Valid {
			card.Due = domain.DayOf(due.Time.UTC())
		}
		cards = append(cards, &card)
	}

	return cards, rows.Err()
}

func (s *PostgresStateStore) loadSessions(ctx context.Context, q store.DBTX) ([]domain.StudySession, error) {
	query := `
		SELECT id, date, minutes, activity, notes
		FROM study_sessions
		ORDER BY seq
	`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	sessions := []domain.StudySession{}
	for rows.Next() {
		var session domain.StudySession
		var date sql.NullTime
		var notes sql.NullString
		if err := rows.Scan(
			&session.ID,
			&date,
			&session.Minutes,
			&session.Activity,
			&notes,
		); err != nil {
			return nil, err
		}
		if date.Valid {
			session.Date = domain.DayOf(date.Time.UTC())
		}
		session.Notes = notes.String
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

func (s *PostgresStateStore) saveCards(ctx context.Context, q store.DBTX, cards []*domain.VocabCard) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM vocab_cards`); err != nil {
		return err
	}

	query := `
		INSERT INTO vocab_cards (id, front, back, ease_factor, interval_days, due, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, card := range cards {
		if _, err := q.ExecContext(
			ctx,
			query,
			card.ID,
			card.Front,
			card.Back,
			card.EaseFactor,
			card.Interval,
			card.Due.Time(),
			card.CreatedAt,
			card.UpdatedAt,
		); err != nil {
			return err
		}
	}

	return nil
}

func (s *PostgresStateStore) saveSessions(ctx context.Context, q store.DBTX, sessions []domain.StudySession) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM study_sessions`); err != nil {
		return err
	}

	query := `
		INSERT INTO study_sessions (id, seq, date, minutes, activity, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for seq, session := range sessions {
		if _, err := q.ExecContext(
			ctx,
			query,
			session.ID,
			seq,
			session.Date.Time(),
			session.Minutes,
			session.Activity,
			session.Notes,
		); err != nil {
			return err
		}
	}

	return nil
}

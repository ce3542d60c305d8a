package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ejolly/lingolog/internal/analytics"
	"github.com/ejolly/lingolog/internal/config"
	"github.com/ejolly/lingolog/internal/domain/srs"
	"github.com/ejolly/lingolog/internal/platform/postgres"
	"github.com/ejolly/lingolog/internal/service/auth"
	"github.com/ejolly/lingolog/internal/service/tracker"
)

// application holds the wired dependencies of the running server.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	db               *sql.DB
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	trackerService   tracker.TrackerService
}

// newApplication wires configuration into a ready-to-serve application:
// database connection, migrations, stores, and services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	weekStart, err := cfg.Study.WeekStart()
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("invalid week start day: %w", err)
	}

	engine := analytics.NewEngine(analytics.Config{
		StreakLookbackDays: cfg.Study.StreakLookbackDays,
		WeekStart:          &weekStart,
	})

	stateStore := postgres.NewPostgresStateStore(db, logger)
	srsService := srs.NewDefaultService()

	trackerService, err := tracker.NewTrackerService(
		ctx,
		stateStore,
		srsService,
		engine,
		cfg.Study,
		logger,
	)
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to create tracker service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
		trackerService:   trackerService,
	}, nil
}

// cleanup releases the application's resources. Waits for in-flight
// background saves before closing the database so the last mutation is
// not dropped.
func (app *application) cleanup() {
	if closer, ok := app.trackerService.(interface{ Close() }); ok {
		closer.Close()
	}
	closeDatabase(app.db, app.logger)
}

func closeDatabase(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}
}

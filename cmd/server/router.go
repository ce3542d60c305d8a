package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ejolly/lingolog/internal/api"
	apiMiddleware "github.com/ejolly/lingolog/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.config.Auth,
		app.jwtService,
		app.passwordVerifier,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	cardHandler := api.NewCardHandler(app.trackerService, app.logger)
	sessionHandler := api.NewSessionHandler(app.trackerService, app.logger)
	analyticsHandler := api.NewAnalyticsHandler(app.trackerService, app.logger)
	stateHandler := api.NewStateHandler(app.trackerService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoint (public)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Vocabulary cards
			r.Post("/cards", cardHandler.CreateCard)
			r.Get("/cards", cardHandler.ListCards)
			r.Get("/cards/due", cardHandler.GetDueCards)
			r.Post("/cards/{id}/review", cardHandler.SubmitReview)
			r.Post("/cards/{id}/speech-review", cardHandler.SubmitSpeechReview)

			// Study log
			r.Post("/sessions", sessionHandler.CreateSession)
			r.Get("/sessions", sessionHandler.ListSessions)

			// Analytics views
			r.Get("/analytics/summary", analyticsHandler.GetSummary)
			r.Get("/analytics/series", analyticsHandler.GetSeries)
			r.Get("/analytics/breakdown", analyticsHandler.GetBreakdown)
			r.Get("/analytics/heatmap", analyticsHandler.GetHeatmap)

			// Wholesale export/import
			r.Get("/state/export", stateHandler.Export)
			r.Post("/state/import", stateHandler.Import)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

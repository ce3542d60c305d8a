package api

import (
	"log/slog"
	"net/http"

	"github.com/ejolly/lingolog/internal/api/shared"
	"github.com/ejolly/lingolog/internal/domain"
	"github.com/ejolly/lingolog/internal/platform/logger"
	"github.com/ejolly/lingolog/internal/service/tracker"
)

// SessionHandler handles study-log HTTP requests.
type SessionHandler struct {
	trackerService tracker.TrackerService
	logger         *slog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(trackerService tracker.TrackerService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}

	return &SessionHandler{
		trackerService: trackerService,
		logger:         logger.With(slog.String("component", "session_handler")),
	}
}

// CreateSession handles POST /sessions requests. It appends one entry to
// the study log, dated the server's current day.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	activity, err := domain.ParseActivity(req.Activity)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	session, err := h.trackerService.AddSession(r.Context(), req.Minutes, activity, req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("session created",
		slog.String("session_id", session.ID.String()),
		slog.String("activity", session.Activity.String()),
		slog.Int("minutes", session.Minutes))
	shared.RespondWithJSON(w, r, http.StatusCreated, sessionToResponse(session))
}

// ListSessions handles GET /sessions requests, returning the study log in
// append order.
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.trackerService.ListSessions(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionsToResponse(sessions))
}

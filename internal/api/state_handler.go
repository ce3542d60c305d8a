package api

import (
	"log/slog"
	"net/http"

	"github.com/ejolly/lingolog/internal/api/shared"
	"github.com/ejolly/lingolog/internal/domain"
	"github.com/ejolly/lingolog/internal/platform/logger"
	"github.com/ejolly/lingolog/internal/service/tracker"
)

// StateHandler serves wholesale export and import of the full tracker
// state as a single JSON document.
type StateHandler struct {
	trackerService tracker.TrackerService
	logger         *slog.Logger
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(trackerService tracker.TrackerService, logger *slog.Logger) *StateHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StateHandler")
	}

	return &StateHandler{
		trackerService: trackerService,
		logger:         logger.With(slog.String("component", "state_handler")),
	}
}

// Export handles GET /state/export requests. The response body is the
// complete state document, suitable for re-import.
func (h *StateHandler) Export(w http.ResponseWriter, r *http.Request) {
	state, err := h.trackerService.Export(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, state)
}

// Import handles POST /state/import requests. The uploaded document
// replaces the full state wholesale; a malformed document is rejected
// without touching the existing state.
func (h *StateHandler) Import(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var state domain.State
	if err := shared.DecodeJSON(r, &state); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.trackerService.Import(r.Context(), &state); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("state import accepted",
		slog.Int("cards", len(state.Cards)),
		slog.Int("sessions", len(state.Sessions)))
	w.WriteHeader(http.StatusNoContent)
}

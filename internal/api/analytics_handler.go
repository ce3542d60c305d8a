package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ejolly/lingolog/internal/api/shared"
	"github.com/ejolly/lingolog/internal/service/tracker"
)

// maxSeriesDays caps the rolling-window query parameter so a single
// request cannot ask for an unbounded series.
const maxSeriesDays = 366

// maxHeatmapWeeks caps the heatmap query parameter.
const maxHeatmapWeeks = 53

// AnalyticsHandler serves the derived analytics views.
type AnalyticsHandler struct {
	trackerService tracker.TrackerService
	logger         *slog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(trackerService tracker.TrackerService, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AnalyticsHandler")
	}

	return &AnalyticsHandler{
		trackerService: trackerService,
		logger:         logger.With(slog.String("component", "analytics_handler")),
	}
}

// GetSummary handles GET /analytics/summary requests.
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.trackerService.Summary(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}

// GetSeries handles GET /analytics/series requests.
// The optional "days" query parameter sets the window length; zero or
// absent falls back to the configured default.
func (h *AnalyticsHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	days, ok := h.intQueryParam(w, r, "days", maxSeriesDays)
	if !ok {
		return
	}

	series, err := h.trackerService.RollingSeries(r.Context(), days)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, series)
}

// GetBreakdown handles GET /analytics/breakdown requests, returning
// minutes per activity kind over the trailing seven days.
func (h *AnalyticsHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.trackerService.ActivityBreakdown(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, breakdown)
}

// GetHeatmap handles GET /analytics/heatmap requests.
// The optional "weeks" query parameter sets how many trailing weeks to
// include; zero or absent falls back to the configured default.
func (h *AnalyticsHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	weeks, ok := h.intQueryParam(w, r, "weeks", maxHeatmapWeeks)
	if !ok {
		return
	}

	heatmap, err := h.trackerService.Heatmap(r.Context(), weeks)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, heatmap)
}

// intQueryParam parses an optional positive integer query parameter,
// writing the error response itself on bad input. Absent means zero, which
// callers treat as "use the configured default".
func (h *AnalyticsHandler) intQueryParam(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	max int,
) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 || value > max {
		h.logger.Debug("rejected query parameter",
			slog.String("param", name),
			slog.String("value", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Query parameter "+name+" must be a positive integer no greater than "+strconv.Itoa(max))
		return 0, false
	}

	return value, true
}

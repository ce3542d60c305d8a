// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ejolly/lingolog/internal/api/shared"
	"github.com/ejolly/lingolog/internal/domain"
	"github.com/ejolly/lingolog/internal/platform/logger"
	"github.com/ejolly/lingolog/internal/service/tracker"
	"github.com/ejolly/lingolog/internal/speech"
)

// CardHandler handles vocabulary-card HTTP requests.
type CardHandler struct {
	trackerService tracker.TrackerService
	logger         *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(trackerService tracker.TrackerService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		trackerService: trackerService,
		logger:         logger.With(slog.String("component", "card_handler")),
	}
}

// CreateCard handles POST /cards requests.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req CreateCardRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	card, err := h.trackerService.AddCard(r.Context(), req.Front, req.Back)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// ListCards handles GET /cards requests.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.trackerService.ListCards(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// GetDueCards handles GET /cards/due requests.
// Responds with 204 No Content when nothing is due.
func (h *CardHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	due, err := h.trackerService.DueCards(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if len(due) == 0 {
		log.Debug("no cards due for review")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(due))
}

// SubmitReview handles POST /cards/{id}/review requests.
// It applies a 0-5 review score to the card and returns the rescheduled
// result.
func (h *CardHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := h.cardIDFromPath(w, r)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	quality, err := domain.NewQuality(req.Quality)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	card, err := h.trackerService.ReviewCard(r.Context(), cardID, quality)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("review applied",
		slog.String("card_id", cardID.String()),
		slog.Int("quality", quality.Int()))
	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// SubmitSpeechReview handles POST /cards/{id}/speech-review requests.
// The recognized utterance is compared to the card's front text; the
// resulting overlap ratio is mapped onto the 0-5 scale and applied as an
// ordinary review.
func (h *CardHandler) SubmitSpeechReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := h.cardIDFromPath(w, r)
	if !ok {
		return
	}

	var req SpeechReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	card, err := h.trackerService.GetCard(r.Context(), cardID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	similarity := speech.Similarity(req.Recognized, card.Front)
	quality := speech.QualityFromSimilarity(similarity)

	reviewed, err := h.trackerService.ReviewCard(r.Context(), cardID, quality)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("speech review applied",
		slog.String("card_id", cardID.String()),
		slog.Float64("similarity", similarity),
		slog.Int("quality", quality.Int()))

	shared.RespondWithJSON(w, r, http.StatusOK, SpeechReviewResponse{
		Similarity: similarity,
		Quality:    quality.Int(),
		Card:       cardToResponse(reviewed),
	})
}

// cardIDFromPath extracts and parses the {id} URL parameter, writing the
// error response itself when the ID is missing or malformed.
func (h *CardHandler) cardIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	pathCardID := chi.URLParam(r, "id")
	if pathCardID == "" {
		log.Warn("card ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Card ID is required")
		return uuid.Nil, false
	}

	cardID, err := uuid.Parse(pathCardID)
	if err != nil {
		log.Warn("invalid card ID format", slog.String("card_id", pathCardID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID format")
		return uuid.Nil, false
	}

	return cardID, true
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/api/middleware"
	"github.com/lpetrosyan/vocab-api/internal/api/shared"
	"github.com/lpetrosyan/vocab-api/internal/service"
)

// ReviewHandler handles the review loop: fetching due cards, accepting
// answers and reporting workload.
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a ReviewHandler with the given dependencies.
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// NextCard handles GET /review/next?pair_id=...&set_id=....
func (h *ReviewHandler) NextCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	pairID, err := uuid.Parse(r.URL.Query().Get("pair_id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid or missing pair_id")
		return
	}
	setID, ok := parseOptionalUUID(r.URL.Query().Get("set_id"))
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid set_id")
		return
	}

	card, err := h.reviewService.NextCard(r.Context(), userID, pairID, setID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ReviewCardResponse{
		CardID:       card.Card.ID,
		WordID:       card.Card.WordID,
		Direction:    string(card.Card.Direction),
		Prompt:       card.Prompt,
		SrsIndex:     card.Card.SrsIndex,
		NextReviewAt: card.Card.NextReviewAt,
		Examples:     card.Word.Examples,
	})
}

// SubmitAnswer handles POST /review/cards/{id}/answer.
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid identifier")
		return
	}

	var req SubmitAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.reviewService.SubmitAnswer(r.Context(), userID, cardID, req.Answer, req.ResponseTimeMs)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SubmitAnswerResponse{
		Correct:      result.Correct,
		ExpectedText: result.ExpectedText,
		SrsIndex:     result.Card.SrsIndex,
		NextReviewAt: result.Card.NextReviewAt,
	})
}

// Overview handles GET /review/overview?pair_id=...&set_id=....
func (h *ReviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	pairID, err := uuid.Parse(r.URL.Query().Get("pair_id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid or missing pair_id")
		return
	}
	setID, ok := parseOptionalUUID(r.URL.Query().Get("set_id"))
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid set_id")
		return
	}

	overview, err := h.reviewService.Overview(r.Context(), userID, pairID, setID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, OverviewResponse{
		Total:        overview.Total,
		Due:          overview.Due,
		NextReviewAt: overview.NextReviewAt,
	})
}

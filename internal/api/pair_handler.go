package api

import (
	"net/http"

	"github.com/lpetrosyan/vocab-api/internal/api/middleware"
	"github.com/lpetrosyan/vocab-api/internal/api/shared"
	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/service"
)

// PairHandler handles language pair management.
type PairHandler struct {
	userService *service.UserService
}

// NewPairHandler creates a PairHandler with the given dependencies.
func NewPairHandler(userService *service.UserService) *PairHandler {
	return &PairHandler{userService: userService}
}

// Create handles POST /pairs.
func (h *PairHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreatePairRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	source, err := domain.ParseLanguage(req.SourceLang)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}
	target, err := domain.ParseLanguage(req.TargetLang)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	pair, err := h.userService.CreatePair(r.Context(), userID, source, target)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewPairResponse(pair))
}

// List handles GET /pairs.
func (h *PairHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	pairs, err := h.userService.ListPairs(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	resp := make([]PairResponse, 0, len(pairs))
	for _, pair := range pairs {
		resp = append(resp, NewPairResponse(pair))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// SetActive handles PUT /pairs/active.
func (h *PairHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req SetActivePairRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.userService.SetActivePair(r.Context(), userID, req.PairID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetActive handles GET /pairs/active.
func (h *PairHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	pair, err := h.userService.ActivePair(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPairResponse(pair))
}

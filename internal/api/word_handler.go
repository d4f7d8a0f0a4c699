package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/api/middleware"
	"github.com/lpetrosyan/vocab-api/internal/api/shared"
	"github.com/lpetrosyan/vocab-api/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// WordHandler handles vocabulary word and set management.
type WordHandler struct {
	wordService *service.WordService
}

// NewWordHandler creates a WordHandler with the given dependencies.
func NewWordHandler(wordService *service.WordService) *WordHandler {
	return &WordHandler{wordService: wordService}
}

// Create handles POST /words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	word, err := h.wordService.AddWord(r.Context(), userID, req.PairID, req.SetID, req.Text, req.Translation, req.Generate)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewWordResponse(word))
}

// Get handles GET /words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	wordID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid identifier")
		return
	}

	word, err := h.wordService.GetWord(r.Context(), userID, wordID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewWordResponse(word))
}

// List handles GET /words?pair_id=...&set_id=...&limit=...&offset=....
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
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
	limit, offset, ok := parsePagination(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	words, err := h.wordService.ListWords(r.Context(), userID, pairID, setID, limit, offset)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	resp := make([]WordResponse, 0, len(words))
	for _, word := range words {
		resp = append(resp, NewWordResponse(word))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Search handles GET /words/search?pair_id=...&q=.... Lookup is tolerant of
// case, articles and extra whitespace; only an exact-enough match is returned.
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
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
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing query parameter q")
		return
	}

	word, err := h.wordService.FindWord(r.Context(), userID, pairID, query)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewWordResponse(word))
}

// Update handles PATCH /words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	wordID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid identifier")
		return
	}

	var req UpdateWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	update := service.WordUpdate{
		Translation:   req.Translation,
		Synonyms:      req.Synonyms,
		PartOfSpeech:  req.PartOfSpeech,
		Gender:        req.Gender,
		Transcription: req.Transcription,
		Note:          req.Note,
		Examples:      req.Examples,
	}
	if req.ClearSet {
		var none *uuid.UUID
		update.SetID = &none
	} else if req.SetID != nil {
		update.SetID = &req.SetID
	}

	word, err := h.wordService.UpdateWord(r.Context(), userID, wordID, update)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewWordResponse(word))
}

// Delete handles DELETE /words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	wordID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid identifier")
		return
	}

	if err := h.wordService.DeleteWord(r.Context(), userID, wordID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateSet handles POST /sets.
func (h *WordHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateSetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	set, err := h.wordService.CreateSet(r.Context(), userID, req.PairID, req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewSetResponse(set))
}

// ListSets handles GET /sets?pair_id=....
func (h *WordHandler) ListSets(w http.ResponseWriter, r *http.Request) {
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

	sets, err := h.wordService.ListSets(r.Context(), userID, pairID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	resp := make([]SetResponse, 0, len(sets))
	for _, set := range sets {
		resp = append(resp, NewSetResponse(set))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// DeleteSet handles DELETE /sets/{id}. Words in the set survive without set
// membership.
func (h *WordHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	setID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid identifier")
		return
	}

	if err := h.wordService.DeleteSet(r.Context(), userID, setID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseOptionalUUID parses a query parameter that may be absent. The second
// return is false only when a value was present and malformed.
func parseOptionalUUID(raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func parsePagination(r *http.Request) (limit, offset int, ok bool) {
	limit = defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		limit = n
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		offset = n
	}
	return limit, offset, true
}

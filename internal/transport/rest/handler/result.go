package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"istitlaa/internal/service"
)

// ResultHandler handles response listing, scoring and participant endpoints
type ResultHandler struct {
	resultSvc *service.ResultService
}

// NewResultHandler creates a new result handler
func NewResultHandler(resultSvc *service.ResultService) *ResultHandler {
	return &ResultHandler{resultSvc: resultSvc}
}

// Responses handles GET /polls/responses/{pollId}
func (h *ResultHandler) Responses(w http.ResponseWriter, r *http.Request) {
	pollID := mux.Vars(r)["pollId"]

	envelope, err := h.resultSvc.Responses(r.Context(), pollID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope)
}

// Score handles GET /polls/{id}/score
func (h *ResultHandler) Score(w http.ResponseWriter, r *http.Request) {
	pollID := mux.Vars(r)["id"]

	result, err := h.resultSvc.Score(r.Context(), pollID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  result,
	})
}

// Scores handles GET /polls/scores
func (h *ResultHandler) Scores(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultSvc.ScoreAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(results),
		"results": results,
	})
}

// Participants handles GET /polls/{id}/participants
func (h *ResultHandler) Participants(w http.ResponseWriter, r *http.Request) {
	pollID := mux.Vars(r)["id"]

	participants, err := h.resultSvc.Participants(r.Context(), pollID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"count":        len(participants),
		"participants": participants,
	})
}

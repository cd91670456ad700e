package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"istitlaa/internal/model"
	"istitlaa/internal/service"
)

// PollHandler handles poll CRUD and the public solve endpoint
type PollHandler struct {
	pollSvc *service.PollService
}

// NewPollHandler creates a new poll handler
func NewPollHandler(pollSvc *service.PollService) *PollHandler {
	return &PollHandler{pollSvc: pollSvc}
}

// PollRequest is the request body for creating or updating a poll
type PollRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`
}

// Create handles POST /polls
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	poll := &model.Poll{
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
	}

	id, err := h.pollSvc.Create(r.Context(), poll)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "poll created successfully",
		"poll":    poll,
		"pollId":  id,
	})
}

// List handles GET /polls
func (h *PollHandler) List(w http.ResponseWriter, r *http.Request) {
	polls, err := h.pollSvc.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(polls),
		"polls":   polls,
	})
}

// Get handles GET /polls/{id}
func (h *PollHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	poll, err := h.pollSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if poll == nil {
		writeError(w, http.StatusNotFound, "poll not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"poll":    poll,
	})
}

// Update handles PUT /polls/{id}
func (h *PollHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req PollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	poll := &model.Poll{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
		IsActive:    true,
	}

	updated, err := h.pollSvc.Update(r.Context(), poll)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "poll updated successfully",
		"poll":    updated,
	})
}

// Delete handles DELETE /polls/{id}
func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.pollSvc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "poll deleted successfully",
	})
}

// Solve handles POST /polls/solve
func (h *PollHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req service.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.pollSvc.Solve(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "poll response submitted successfully",
		"response": response,
	})
}

// writeServiceError maps service errors onto HTTP status codes
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPollNotFound), errors.Is(err, service.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPollInactive), errors.Is(err, service.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"istitlaa/internal/model"
	"istitlaa/internal/service"
)

// QuestionHandler handles question endpoints
type QuestionHandler struct {
	questionSvc *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSvc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// QuestionRequest is the request body for creating or updating a question
type QuestionRequest struct {
	PollID  string         `json:"pollId"`
	Text    string         `json:"text"`
	Answers []model.Answer `json:"answers"`
}

// Create handles POST /questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PollID == "" {
		writeError(w, http.StatusBadRequest, "pollId is required")
		return
	}

	question, err := h.questionSvc.Create(r.Context(), req.PollID, model.Question{
		Text:    req.Text,
		Answers: req.Answers,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "question created successfully",
		"question": question,
	})
}

// ListByPoll handles GET /questions/poll/{pollId}
func (h *QuestionHandler) ListByPoll(w http.ResponseWriter, r *http.Request) {
	pollID := mux.Vars(r)["pollId"]

	questions, err := h.questionSvc.GetByPollID(r.Context(), pollID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"count":     len(questions),
		"questions": questions,
	})
}

// Get handles GET /questions/{id}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	question, err := h.questionSvc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": question,
	})
}

// Update handles PUT /questions/{id}
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.questionSvc.Update(r.Context(), model.Question{
		ID:      id,
		Text:    req.Text,
		Answers: req.Answers,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "question updated successfully",
		"question": question,
	})
}

// Delete handles DELETE /questions/{id}
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.questionSvc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "question deleted successfully",
	})
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"istitlaa/internal/cache"
	"istitlaa/internal/model"
	"istitlaa/internal/repository"
)

var (
	ErrPollNotFound   = errors.New("poll not found")
	ErrPollInactive   = errors.New("this poll is no longer active")
	ErrInvalidRequest = errors.New("please provide all required fields")
)

// SolveRequest is a respondent's full submission for one poll.
type SolveRequest struct {
	PollID           string                   `json:"pollId" validate:"required"`
	Name             string                   `json:"name" validate:"required"`
	Email            string                   `json:"email" validate:"required,email"`
	EmploymentStatus string                   `json:"employment_status" validate:"required"`
	Teaching         string                   `json:"teaching" validate:"required"`
	DateOfBirth      string                   `json:"date_of_birth" validate:"required"`
	Address          string                   `json:"address" validate:"required"`
	Gender           string                   `json:"gender" validate:"required,oneof=male female"`
	Solve            []model.QuestionResponse `json:"solve" validate:"required,min=1,dive"`
}

// PollService handles poll CRUD and the public solve flow
type PollService struct {
	pollRepo     repository.PollRepo
	responseRepo repository.ResponseRepo
	resultCache  cache.ResultCache
	validate     *validator.Validate
	broadcaster  Broadcaster
}

// NewPollService creates a new poll service
func NewPollService(pollRepo repository.PollRepo, responseRepo repository.ResponseRepo, resultCache cache.ResultCache) *PollService {
	return &PollService{
		pollRepo:     pollRepo,
		responseRepo: responseRepo,
		resultCache:  resultCache,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SetBroadcaster injects the event broadcaster
func (s *PollService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create stores a new poll, assigning ids to embedded questions and answers
func (s *PollService) Create(ctx context.Context, poll *model.Poll) (string, error) {
	if poll.Title == "" || poll.Description == "" || len(poll.Questions) == 0 {
		return "", ErrInvalidRequest
	}

	assignQuestionIDs(poll.Questions)
	poll.IsActive = true

	id, err := s.pollRepo.Create(ctx, poll)
	if err != nil {
		return "", err
	}

	s.emit(EventPollCreated, map[string]string{"pollId": id, "title": poll.Title})
	return id, nil
}

// GetByID retrieves a poll by ID
func (s *PollService) GetByID(ctx context.Context, id string) (*model.Poll, error) {
	return s.pollRepo.GetByID(ctx, id)
}

// GetAll retrieves all polls, newest first
func (s *PollService) GetAll(ctx context.Context) ([]*model.Poll, error) {
	return s.pollRepo.GetAll(ctx)
}

// Update replaces an existing poll definition
func (s *PollService) Update(ctx context.Context, poll *model.Poll) (*model.Poll, error) {
	existing, err := s.pollRepo.GetByID(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPollNotFound
	}

	assignQuestionIDs(poll.Questions)
	poll.CreatedAt = existing.CreatedAt
	if err := s.pollRepo.Update(ctx, poll); err != nil {
		return nil, err
	}

	// A changed definition may change every score derived from it.
	if err := s.resultCache.Invalidate(ctx, poll.ID); err != nil {
		slog.Warn("score cache invalidation failed", "pollId", poll.ID, "error", err)
	}

	s.emit(EventPollUpdated, map[string]string{"pollId": poll.ID, "title": poll.Title})
	return poll, nil
}

// Delete removes a poll and its stored responses
func (s *PollService) Delete(ctx context.Context, id string) error {
	poll, err := s.pollRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if poll == nil {
		return ErrPollNotFound
	}

	if err := s.pollRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.responseRepo.DeleteByPollID(ctx, id); err != nil {
		slog.Warn("response cleanup failed", "pollId", id, "error", err)
	}
	if err := s.resultCache.Invalidate(ctx, id); err != nil {
		slog.Warn("score cache invalidation failed", "pollId", id, "error", err)
	}

	s.emit(EventPollDeleted, map[string]string{"pollId": id})
	return nil
}

// Solve stores one respondent's submission for an active poll
func (s *PollService) Solve(ctx context.Context, req *SolveRequest) (*model.PollResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, ErrInvalidRequest
	}

	poll, err := s.pollRepo.GetByID(ctx, req.PollID)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, ErrPollNotFound
	}
	if !poll.IsActive {
		return nil, ErrPollInactive
	}

	response := &model.PollResponse{
		PollID:           req.PollID,
		Name:             req.Name,
		Email:            req.Email,
		EmploymentStatus: req.EmploymentStatus,
		Teaching:         req.Teaching,
		DateOfBirth:      req.DateOfBirth,
		Address:          req.Address,
		Gender:           req.Gender,
		Responses:        req.Solve,
	}

	id, err := s.responseRepo.Create(ctx, response)
	if err != nil {
		return nil, err
	}
	response.ID = id

	if err := s.resultCache.Invalidate(ctx, req.PollID); err != nil {
		slog.Warn("score cache invalidation failed", "pollId", req.PollID, "error", err)
	}

	s.emit(EventResponseSubmitted, map[string]string{"pollId": req.PollID, "responseId": id})
	return response, nil
}

func (s *PollService) emit(event string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastEvent(event, payload)
	}
}

// assignQuestionIDs fills in ids for questions and answers created on the
// client side. Embedded documents get no ids from the database, so they are
// generated here.
func assignQuestionIDs(questions []model.Question) {
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.New().String()
		}
		for j := range questions[i].Answers {
			if questions[i].Answers[j].ID == "" {
				questions[i].Answers[j].ID = uuid.New().String()
			}
		}
	}
}

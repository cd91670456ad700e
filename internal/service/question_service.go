package service

import (
	"context"
	"errors"

	"istitlaa/internal/model"
	"istitlaa/internal/repository"
)

var ErrQuestionNotFound = errors.New("question not found")

// QuestionService manages the questions embedded in poll documents
type QuestionService struct {
	pollRepo repository.PollRepo
}

// NewQuestionService creates a new question service
func NewQuestionService(pollRepo repository.PollRepo) *QuestionService {
	return &QuestionService{pollRepo: pollRepo}
}

// Create appends a question to a poll
func (s *QuestionService) Create(ctx context.Context, pollID string, question model.Question) (*model.Question, error) {
	if question.Text == "" || len(question.Answers) == 0 {
		return nil, ErrInvalidRequest
	}

	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, ErrPollNotFound
	}

	questions := []model.Question{question}
	assignQuestionIDs(questions)

	if err := s.pollRepo.AddQuestion(ctx, pollID, questions[0]); err != nil {
		return nil, err
	}
	return &questions[0], nil
}

// GetByPollID lists a poll's questions
func (s *QuestionService) GetByPollID(ctx context.Context, pollID string) ([]model.Question, error) {
	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, ErrPollNotFound
	}
	return poll.Questions, nil
}

// GetByID locates a single question across all polls
func (s *QuestionService) GetByID(ctx context.Context, questionID string) (*model.Question, error) {
	poll, err := s.pollRepo.GetByQuestionID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, ErrQuestionNotFound
	}

	for i := range poll.Questions {
		if poll.Questions[i].ID == questionID {
			return &poll.Questions[i], nil
		}
	}
	return nil, ErrQuestionNotFound
}

// Update replaces a question wherever it is embedded
func (s *QuestionService) Update(ctx context.Context, question model.Question) (*model.Question, error) {
	if question.ID == "" || question.Text == "" || len(question.Answers) == 0 {
		return nil, ErrInvalidRequest
	}

	poll, err := s.pollRepo.GetByQuestionID(ctx, question.ID)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, ErrQuestionNotFound
	}

	// Keep ids for existing answers, mint them for new ones.
	questions := []model.Question{question}
	assignQuestionIDs(questions)

	if err := s.pollRepo.UpdateQuestion(ctx, questions[0]); err != nil {
		return nil, err
	}
	return &questions[0], nil
}

// Delete removes a question from its poll
func (s *QuestionService) Delete(ctx context.Context, questionID string) error {
	poll, err := s.pollRepo.GetByQuestionID(ctx, questionID)
	if err != nil {
		return err
	}
	if poll == nil {
		return ErrQuestionNotFound
	}
	return s.pollRepo.RemoveQuestion(ctx, questionID)
}

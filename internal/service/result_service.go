package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"istitlaa/internal/cache"
	"istitlaa/internal/model"
	"istitlaa/internal/repository"
	"istitlaa/internal/scoring"
)

// scoreFanOut bounds concurrent per-poll score computations on the
// dashboard listing.
const scoreFanOut = 8

// ResponsesEnvelope is the body served by the responses endpoint. It is the
// answers shape: every stored selection resolved to its answer with the
// respondent identity attached, ready for the scoring package.
type ResponsesEnvelope struct {
	Success bool          `json:"success"`
	Data    ResponsesData `json:"data"`
}

// ResponsesData wraps the resolved answer entries
type ResponsesData struct {
	Answers []RespondentAnswer `json:"answers"`
}

// RespondentAnswer pairs one resolved selection with its respondent
type RespondentAnswer struct {
	User   RespondentInfo `json:"user"`
	Answer AnswerDetail   `json:"answer"`
}

// RespondentInfo is the identity block attached to each entry
type RespondentInfo struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	EmploymentStatus string `json:"employment_status"`
	Teaching         string `json:"teaching"`
	DateOfBirth      string `json:"date_of_birth"`
	Address          string `json:"address"`
	Gender           string `json:"gender"`
}

// AnswerDetail carries the resolved answer with its question text
type AnswerDetail struct {
	ID       string       `json:"id"`
	Points   int          `json:"points"`
	Text     string       `json:"text"`
	Question QuestionText `json:"Question"`
}

// QuestionText is the question context nested in an answer detail
type QuestionText struct {
	Text string `json:"text"`
}

// ResultService resolves stored submissions against poll definitions and
// aggregates them into scores and participant lists
type ResultService struct {
	pollRepo     repository.PollRepo
	responseRepo repository.ResponseRepo
	resultCache  cache.ResultCache
}

// NewResultService creates a new result service
func NewResultService(pollRepo repository.PollRepo, responseRepo repository.ResponseRepo, resultCache cache.ResultCache) *ResultService {
	return &ResultService{
		pollRepo:     pollRepo,
		responseRepo: responseRepo,
		resultCache:  resultCache,
	}
}

// Responses builds the resolved answers payload for a poll
func (s *ResultService) Responses(ctx context.Context, pollID string) (*ResponsesEnvelope, error) {
	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, ErrPollNotFound
	}
	return s.buildEnvelope(ctx, poll)
}

// Score computes the average point score for one poll, consulting the
// cache first
func (s *ResultService) Score(ctx context.Context, pollID string) (*scoring.ScoreResult, error) {
	cached, err := s.resultCache.Get(ctx, pollID)
	if err != nil {
		slog.Warn("score cache read failed", "pollId", pollID, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, ErrPollNotFound
	}

	result, err := s.scorePoll(ctx, poll)
	if err != nil {
		return nil, err
	}

	if err := s.resultCache.Set(ctx, result); err != nil {
		slog.Warn("score cache write failed", "pollId", pollID, "error", err)
	}
	return result, nil
}

// ScoreAll computes scores for every poll concurrently. A poll whose
// submissions cannot be loaded reports a zero score instead of failing the
// whole listing.
func (s *ResultService) ScoreAll(ctx context.Context) ([]scoring.ScoreResult, error) {
	polls, err := s.pollRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]scoring.ScoreResult, len(polls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreFanOut)
	for i, poll := range polls {
		i, poll := i, poll
		g.Go(func() error {
			results[i] = scoring.ScoreResult{PollID: poll.ID}

			if cached, err := s.resultCache.Get(gctx, poll.ID); err == nil && cached != nil {
				results[i] = *cached
				return nil
			}

			result, err := s.scorePoll(gctx, poll)
			if err != nil {
				slog.Warn("poll scoring failed", "pollId", poll.ID, "error", err)
				return nil
			}
			results[i] = *result

			if err := s.resultCache.Set(gctx, result); err != nil {
				slog.Warn("score cache write failed", "pollId", poll.ID, "error", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Participants lists the unique respondents who answered a poll
func (s *ResultService) Participants(ctx context.Context, pollID string) ([]scoring.Respondent, error) {
	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, ErrPollNotFound
	}

	raw, err := s.envelopeBytes(ctx, poll)
	if err != nil {
		return nil, err
	}
	return scoring.Participants(raw), nil
}

func (s *ResultService) scorePoll(ctx context.Context, poll *model.Poll) (*scoring.ScoreResult, error) {
	raw, err := s.envelopeBytes(ctx, poll)
	if err != nil {
		return nil, err
	}
	result := scoring.Score(poll, raw)
	return &result, nil
}

func (s *ResultService) envelopeBytes(ctx context.Context, poll *model.Poll) ([]byte, error) {
	envelope, err := s.buildEnvelope(ctx, poll)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope)
}

// buildEnvelope resolves each stored (questionId, answerId) selection back
// to its answer in the poll definition. Selections referencing questions or
// answers that no longer exist are skipped.
func (s *ResultService) buildEnvelope(ctx context.Context, poll *model.Poll) (*ResponsesEnvelope, error) {
	responses, err := s.responseRepo.GetByPollID(ctx, poll.ID)
	if err != nil {
		return nil, err
	}

	answers := []RespondentAnswer{}
	for _, response := range responses {
		user := RespondentInfo{
			ID:               response.ID,
			Name:             response.Name,
			Email:            response.Email,
			EmploymentStatus: response.EmploymentStatus,
			Teaching:         response.Teaching,
			DateOfBirth:      response.DateOfBirth,
			Address:          response.Address,
			Gender:           response.Gender,
		}

		for _, selection := range response.Responses {
			question := findQuestion(poll, selection.QuestionID)
			if question == nil {
				continue
			}
			answer := findAnswer(question, selection.AnswerID)
			if answer == nil {
				continue
			}

			answers = append(answers, RespondentAnswer{
				User: user,
				Answer: AnswerDetail{
					ID:       answer.ID,
					Points:   answer.Points,
					Text:     answer.Text,
					Question: QuestionText{Text: question.Text},
				},
			})
		}
	}

	return &ResponsesEnvelope{
		Success: true,
		Data:    ResponsesData{Answers: answers},
	}, nil
}

func findQuestion(poll *model.Poll, questionID string) *model.Question {
	for i := range poll.Questions {
		if poll.Questions[i].ID == questionID {
			return &poll.Questions[i]
		}
	}
	return nil
}

func findAnswer(question *model.Question, answerID string) *model.Answer {
	for i := range question.Answers {
		if question.Answers[i].ID == answerID {
			return &question.Answers[i]
		}
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"istitlaa/internal/model"
	"istitlaa/internal/scoring"
)

// In-memory stand-ins for the Mongo repositories and the Redis cache.

type fakePollRepo struct {
	polls map[string]*model.Poll
	order []string
}

func newFakePollRepo(polls ...*model.Poll) *fakePollRepo {
	r := &fakePollRepo{polls: make(map[string]*model.Poll)}
	for _, p := range polls {
		r.polls[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *fakePollRepo) Create(_ context.Context, poll *model.Poll) (string, error) {
	if poll.ID == "" {
		poll.ID = fmt.Sprintf("poll-%d", len(r.order)+1)
	}
	r.polls[poll.ID] = poll
	r.order = append(r.order, poll.ID)
	return poll.ID, nil
}

func (r *fakePollRepo) GetByID(_ context.Context, id string) (*model.Poll, error) {
	return r.polls[id], nil
}

func (r *fakePollRepo) GetAll(_ context.Context) ([]*model.Poll, error) {
	out := []*model.Poll{}
	for _, id := range r.order {
		if p, ok := r.polls[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePollRepo) Update(_ context.Context, poll *model.Poll) error {
	r.polls[poll.ID] = poll
	return nil
}

func (r *fakePollRepo) Delete(_ context.Context, id string) error {
	delete(r.polls, id)
	return nil
}

func (r *fakePollRepo) AddQuestion(_ context.Context, pollID string, question model.Question) error {
	poll, ok := r.polls[pollID]
	if !ok {
		return fmt.Errorf("poll %s missing", pollID)
	}
	poll.Questions = append(poll.Questions, question)
	return nil
}

func (r *fakePollRepo) UpdateQuestion(_ context.Context, question model.Question) error {
	for _, poll := range r.polls {
		for i := range poll.Questions {
			if poll.Questions[i].ID == question.ID {
				poll.Questions[i] = question
				return nil
			}
		}
	}
	return fmt.Errorf("question %s missing", question.ID)
}

func (r *fakePollRepo) RemoveQuestion(_ context.Context, questionID string) error {
	for _, poll := range r.polls {
		for i := range poll.Questions {
			if poll.Questions[i].ID == questionID {
				poll.Questions = append(poll.Questions[:i], poll.Questions[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (r *fakePollRepo) GetByQuestionID(_ context.Context, questionID string) (*model.Poll, error) {
	for _, poll := range r.polls {
		for i := range poll.Questions {
			if poll.Questions[i].ID == questionID {
				return poll, nil
			}
		}
	}
	return nil, nil
}

type fakeResponseRepo struct {
	responses []*model.PollResponse
}

func (r *fakeResponseRepo) Create(_ context.Context, response *model.PollResponse) (string, error) {
	if response.ID == "" {
		response.ID = fmt.Sprintf("resp-%d", len(r.responses)+1)
	}
	r.responses = append(r.responses, response)
	return response.ID, nil
}

func (r *fakeResponseRepo) GetByPollID(_ context.Context, pollID string) ([]*model.PollResponse, error) {
	out := []*model.PollResponse{}
	for _, resp := range r.responses {
		if resp.PollID == pollID {
			out = append(out, resp)
		}
	}
	return out, nil
}

func (r *fakeResponseRepo) CountByPollID(_ context.Context, pollID string) (int64, error) {
	matches, _ := r.GetByPollID(context.Background(), pollID)
	return int64(len(matches)), nil
}

func (r *fakeResponseRepo) DeleteByPollID(_ context.Context, pollID string) error {
	kept := []*model.PollResponse{}
	for _, resp := range r.responses {
		if resp.PollID != pollID {
			kept = append(kept, resp)
		}
	}
	r.responses = kept
	return nil
}

type fakeResultCache struct {
	results       map[string]*scoring.ScoreResult
	sets          int
	invalidations int
}

func newFakeResultCache() *fakeResultCache {
	return &fakeResultCache{results: make(map[string]*scoring.ScoreResult)}
}

func (c *fakeResultCache) Get(_ context.Context, pollID string) (*scoring.ScoreResult, error) {
	return c.results[pollID], nil
}

func (c *fakeResultCache) Set(_ context.Context, result *scoring.ScoreResult) error {
	c.results[result.PollID] = result
	c.sets++
	return nil
}

func (c *fakeResultCache) Invalidate(_ context.Context, pollID string) error {
	delete(c.results, pollID)
	c.invalidations++
	return nil
}

type fakeBroadcaster struct {
	events []string
}

func (b *fakeBroadcaster) BroadcastEvent(event string, _ interface{}) {
	b.events = append(b.events, event)
}

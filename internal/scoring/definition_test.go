package scoring

import (
	"testing"

	"istitlaa/internal/model"
)

func TestBuildPointsIndexEmptyPoll(t *testing.T) {
	idx := BuildPointsIndex(&model.Poll{ID: "p1"})
	if idx == nil {
		t.Fatal("expected non-nil index for empty poll")
	}
	if len(idx) != 0 {
		t.Errorf("expected empty index, got %d entries", len(idx))
	}

	idx = BuildPointsIndex(nil)
	if idx == nil || len(idx) != 0 {
		t.Errorf("expected empty index for nil poll, got %v", idx)
	}
}

func TestBuildPointsIndexLookup(t *testing.T) {
	poll := &model.Poll{
		ID: "p1",
		Questions: []model.Question{
			{
				ID: "q1",
				Answers: []model.Answer{
					{ID: "a1", Points: 2},
					{ID: "a2", Points: 5},
				},
			},
			{
				ID: "q2",
				Answers: []model.Answer{
					{ID: "a1", Points: -3},
					{ID: "a2", Points: 0},
				},
			},
		},
	}

	idx := BuildPointsIndex(poll)

	tests := []struct {
		name       string
		questionID string
		answerID   string
		points     int
		ok         bool
	}{
		{"existing pair", "q1", "a2", 5, true},
		{"same answer id under another question", "q2", "a1", -3, true},
		{"zero points resolves", "q2", "a2", 0, true},
		{"unknown question", "qx", "a1", 0, false},
		{"unknown answer", "q1", "ax", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, ok := idx.Resolve(tt.questionID, tt.answerID)
			if ok != tt.ok || points != tt.points {
				t.Errorf("Resolve(%s, %s) = (%d, %v), want (%d, %v)",
					tt.questionID, tt.answerID, points, ok, tt.points, tt.ok)
			}
		})
	}
}

func TestBuildPointsIndexDuplicateQuestionLaterWins(t *testing.T) {
	poll := &model.Poll{
		ID: "p1",
		Questions: []model.Question{
			{ID: "q1", Answers: []model.Answer{{ID: "a1", Points: 1}}},
			{ID: "q1", Answers: []model.Answer{{ID: "a1", Points: 9}}},
		},
	}

	idx := BuildPointsIndex(poll)
	points, ok := idx.Resolve("q1", "a1")
	if !ok || points != 9 {
		t.Errorf("expected later question occurrence to win with 9 points, got (%d, %v)", points, ok)
	}
}

func TestBuildPointsIndexDuplicateAnswerFirstWins(t *testing.T) {
	poll := &model.Poll{
		ID: "p1",
		Questions: []model.Question{
			{ID: "q1", Answers: []model.Answer{
				{ID: "a1", Points: 4},
				{ID: "a1", Points: 7},
			}},
		},
	}

	idx := BuildPointsIndex(poll)
	points, ok := idx.Resolve("q1", "a1")
	if !ok || points != 4 {
		t.Errorf("expected first answer occurrence to win with 4 points, got (%d, %v)", points, ok)
	}
}

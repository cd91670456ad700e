package scoring

import (
	"reflect"
	"testing"

	"istitlaa/internal/model"
)

func singleQuestionPoll() *model.Poll {
	return &model.Poll{
		ID: "p1",
		Questions: []model.Question{
			{
				ID: "q1",
				Answers: []model.Answer{
					{ID: "a1", Points: 2},
					{ID: "a2", Points: 5},
				},
			},
		},
	}
}

func TestScoreAnswersShape(t *testing.T) {
	raw := `{"success":true,"data":{"answers":[
		{"user":{"id":"u1"},"answer":{"points":3}},
		{"user":{"id":"u2"},"answer":{"points":5}}
	]}}`

	result := Score(singleQuestionPoll(), []byte(raw))
	if result.AveragePoints != 4.0 || result.SampleCount != 2 {
		t.Errorf("got average=%v count=%d, want 4.0/2", result.AveragePoints, result.SampleCount)
	}
	if result.PollID != "p1" {
		t.Errorf("got pollId=%q, want p1", result.PollID)
	}
}

func TestScoreSolvesShape(t *testing.T) {
	raw := `{"success":true,"data":[
		{"solve":[{"questionId":"q1","answerId":"a1"}]},
		{"solve":[{"questionId":"q1","answerId":"a2"}]}
	]}`

	result := Score(singleQuestionPoll(), []byte(raw))
	if result.AveragePoints != 3.5 || result.SampleCount != 2 {
		t.Errorf("got average=%v count=%d, want 3.5/2", result.AveragePoints, result.SampleCount)
	}
}

func TestScoreSolvesShapeDropsUnresolvable(t *testing.T) {
	raw := `{"success":true,"data":[
		{"solve":[{"questionId":"q1","answerId":"a2"}]},
		{"solve":[{"questionId":"qx","answerId":"ay"}]}
	]}`

	result := Score(singleQuestionPoll(), []byte(raw))
	if result.AveragePoints != 5.0 || result.SampleCount != 1 {
		t.Errorf("unresolvable selection must not count: got average=%v count=%d, want 5.0/1",
			result.AveragePoints, result.SampleCount)
	}
}

func TestScoreScalarPointsShape(t *testing.T) {
	// The scalar moved between wrappers over time; every location scores.
	tests := []struct {
		name string
		raw  string
	}{
		{"under data", `{"data":{"points":7}}`},
		{"under poll", `{"success":true,"poll":{"points":7}}`},
		{"bare top level", `{"points":7}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(singleQuestionPoll(), []byte(tt.raw))
			if result.AveragePoints != 7.0 || result.SampleCount != 1 {
				t.Errorf("got average=%v count=%d, want 7.0/1", result.AveragePoints, result.SampleCount)
			}
		})
	}
}

func TestScoreMalformedInputs(t *testing.T) {
	poll := singleQuestionPoll()
	tests := []struct {
		name string
		raw  []byte
	}{
		{"nil body", nil},
		{"null json", []byte(`null`)},
		{"empty object", []byte(`{}`)},
		{"garbage", []byte(`{{{`)},
		{"empty answers", []byte(`{"data":{"answers":[]}}`)},
		{"solves with no resolvable items", []byte(`{"data":[{"solve":[{"questionId":"zz","answerId":"zz"}]}]}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(poll, tt.raw)
			if result.AveragePoints != 0 || result.SampleCount != 0 {
				t.Errorf("got average=%v count=%d, want exactly 0/0", result.AveragePoints, result.SampleCount)
			}
			if result.PollID != "p1" {
				t.Errorf("pollId must survive a malformed body, got %q", result.PollID)
			}
		})
	}
}

func TestScoreNegativeAndZeroPoints(t *testing.T) {
	poll := &model.Poll{
		ID: "p1",
		Questions: []model.Question{
			{ID: "q1", Answers: []model.Answer{
				{ID: "a1", Points: -4},
				{ID: "a2", Points: 0},
			}},
		},
	}
	raw := `{"data":[
		{"solve":[{"questionId":"q1","answerId":"a1"}]},
		{"solve":[{"questionId":"q1","answerId":"a2"}]}
	]}`

	result := Score(poll, []byte(raw))
	if result.AveragePoints != -2.0 || result.SampleCount != 2 {
		t.Errorf("got average=%v count=%d, want -2.0/2", result.AveragePoints, result.SampleCount)
	}
}

func TestScoreRounding(t *testing.T) {
	// 7 points over 3 samples: 2.333... rounds to 2.3
	raw := `{"data":{"answers":[
		{"user":{"id":"u1"},"answer":{"points":2}},
		{"user":{"id":"u2"},"answer":{"points":2}},
		{"user":{"id":"u3"},"answer":{"points":3}}
	]}}`

	result := Score(singleQuestionPoll(), []byte(raw))
	if result.AveragePoints != 2.3 || result.SampleCount != 3 {
		t.Errorf("got average=%v count=%d, want 2.3/3", result.AveragePoints, result.SampleCount)
	}
}

func TestScoreIdempotent(t *testing.T) {
	poll := singleQuestionPoll()
	raw := []byte(`{"data":[
		{"solve":[{"questionId":"q1","answerId":"a1"}]},
		{"solve":[{"questionId":"q1","answerId":"a2"}]}
	]}`)

	first := Score(poll, raw)
	second := Score(poll, raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestScoreAnswersEntriesWithoutPointsSkipped(t *testing.T) {
	raw := `{"data":{"answers":[
		{"user":{"id":"u1"},"answer":{"points":3}},
		{"user":{"id":"u2"},"answer":{"text":"no points field"}},
		{"user":{"id":"u3"},"answer":{"points":null}}
	]}}`

	result := Score(singleQuestionPoll(), []byte(raw))
	if result.AveragePoints != 3.0 || result.SampleCount != 1 {
		t.Errorf("got average=%v count=%d, want 3.0/1", result.AveragePoints, result.SampleCount)
	}
}

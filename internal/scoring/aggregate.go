package scoring

import (
	"math"

	"istitlaa/internal/model"
)

// ScoreResult is the aggregate outcome for one poll. AveragePoints is the
// mean point value across resolved selections, rounded to one decimal.
// SampleCount is the number of selections that resolved; selections that
// could not be resolved are left out of both sum and count.
type ScoreResult struct {
	PollID        string  `json:"pollId"`
	AveragePoints float64 `json:"averagePoints"`
	SampleCount   int     `json:"sampleCount"`
}

// Score computes the mean point score for a poll from a raw submission
// body. Selections referencing a question or answer the poll does not
// define are dropped. Malformed or unrecognized input degrades to a zero
// result rather than an error: a broken payload for one poll must not take
// down a dashboard listing every other poll.
func Score(poll *model.Poll, raw []byte) ScoreResult {
	result := ScoreResult{}
	if poll != nil {
		result.PollID = poll.ID
	}

	payload := ParsePayload(raw)

	var total float64
	var count int

	switch payload.Kind {
	case ShapeAnswers:
		for _, entry := range payload.Answers {
			if entry.Answer.Points == nil {
				continue
			}
			total += *entry.Answer.Points
			count++
		}

	case ShapeSolves:
		idx := BuildPointsIndex(poll)
		for _, rec := range payload.Solves {
			for _, sel := range rec.Solve {
				points, ok := idx.Resolve(sel.QuestionID, sel.AnswerID)
				if !ok {
					continue
				}
				total += float64(points)
				count++
			}
		}

	case ShapePoints:
		total = payload.Points
		count = 1
	}

	if count == 0 {
		return result
	}

	result.AveragePoints = round1(total / float64(count))
	result.SampleCount = count
	return result
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package scoring

import "istitlaa/internal/model"

// PointsIndex is a flattened lookup view of a poll: questionID -> answerID
// -> points.
type PointsIndex map[string]map[string]int

// BuildPointsIndex flattens a poll's question/answer tree into a lookup
// table. If a question id repeats, the later occurrence replaces the
// earlier one; if an answer id repeats within a question, the first
// occurrence is kept. A poll with no questions yields an empty, non-nil
// index.
func BuildPointsIndex(poll *model.Poll) PointsIndex {
	idx := make(PointsIndex)
	if poll == nil {
		return idx
	}

	for _, q := range poll.Questions {
		answers := make(map[string]int, len(q.Answers))
		for _, a := range q.Answers {
			if _, ok := answers[a.ID]; ok {
				continue
			}
			answers[a.ID] = a.Points
		}
		idx[q.ID] = answers
	}
	return idx
}

// Resolve looks up the point value for a (question, answer) pair.
func (idx PointsIndex) Resolve(questionID, answerID string) (int, bool) {
	answers, ok := idx[questionID]
	if !ok {
		return 0, false
	}
	points, ok := answers[answerID]
	return points, ok
}

package scoring

// Participants extracts the unique respondents from an answers-shape body,
// the only shape that carries identity. Entries sharing a respondent id
// collapse into one record with the last occurrence winning; entries
// without an id are dropped. Output order follows first occurrence.
func Participants(raw []byte) []Respondent {
	out := []Respondent{}

	payload := ParsePayload(raw)
	if payload.Kind != ShapeAnswers {
		return out
	}

	order := make([]string, 0, len(payload.Answers))
	seen := make(map[string]Respondent, len(payload.Answers))
	for _, entry := range payload.Answers {
		user := entry.User
		if user.ID == "" {
			continue
		}
		if _, ok := seen[user.ID]; !ok {
			order = append(order, user.ID)
		}
		seen[user.ID] = user
	}

	for _, id := range order {
		out = append(out, seen[id])
	}
	return out
}

package scoring

import "encoding/json"

// Shape identifies which of the known submission payload formats a raw body
// matched. The responses endpoint drifted between an "answers" format and a
// "poll/solve" format over time; every shape stays accepted so that neither
// caller breaks during the migration window.
type Shape int

const (
	ShapeUnknown Shape = iota
	// ShapeAnswers carries pre-resolved answer entries with the respondent
	// identity embedded per entry.
	ShapeAnswers
	// ShapeSolves carries per-submitter records whose (questionId, answerId)
	// selections still need resolution against the poll definition.
	ShapeSolves
	// ShapePoints carries a single scalar points value, one submission.
	ShapePoints
)

// Respondent is the identity block embedded in answers-shape entries.
type Respondent struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Gender           string `json:"gender,omitempty"`
	Teaching         string `json:"teaching,omitempty"`
	EmploymentStatus string `json:"employment_status,omitempty"`
}

// ResolvedAnswer is the answer block of an answers-shape entry. Points is a
// pointer so that a missing or null value is distinguishable from zero;
// entries without a numeric points value are not counted.
type ResolvedAnswer struct {
	ID     string   `json:"id"`
	Points *float64 `json:"points"`
	Text   string   `json:"text"`
}

// AnswerEntry is one item of the answers shape.
type AnswerEntry struct {
	User   Respondent     `json:"user"`
	Answer ResolvedAnswer `json:"answer"`
}

// Selection is a single (question, answer) choice awaiting resolution.
type Selection struct {
	QuestionID string `json:"questionId"`
	AnswerID   string `json:"answerId"`
}

// SolveRecord is one per-submitter record of the solves shape.
type SolveRecord struct {
	Solve []Selection `json:"solve"`
}

// Payload is the parsed form of a raw submission body, tagged by Kind.
// Adding a new backend format means adding a variant here instead of
// another conditional branch at every call site.
type Payload struct {
	Kind    Shape
	Answers []AnswerEntry // ShapeAnswers
	Solves  []SolveRecord // ShapeSolves
	Points  float64       // ShapePoints
}

// envelope mirrors the loose wrapper the responses endpoint emits. The
// legacy format put the record array under "poll" instead of "data", and the
// oldest bodies carried a bare top-level points number.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Poll   json.RawMessage `json:"poll"`
	Points *float64        `json:"points"`
}

// ParsePayload sniffs the structure of a raw submission body and reduces it
// to a tagged Payload. Shapes are tried in priority order: answers entries
// first, then solve records, then a bare points value. Anything that fits
// none of them comes back as ShapeUnknown; this function never fails.
func ParsePayload(raw []byte) Payload {
	var env envelope
	if len(raw) == 0 || json.Unmarshal(raw, &env) != nil {
		return Payload{Kind: ShapeUnknown}
	}

	if entries, ok := answerEntries(env.Data); ok {
		return Payload{Kind: ShapeAnswers, Answers: entries}
	}

	if records, ok := solveRecords(env.Data); ok {
		return Payload{Kind: ShapeSolves, Solves: records}
	}
	if records, ok := solveRecords(env.Poll); ok {
		return Payload{Kind: ShapeSolves, Solves: records}
	}

	if points, ok := scalarPoints(env.Data); ok {
		return Payload{Kind: ShapePoints, Points: points}
	}
	if points, ok := scalarPoints(env.Poll); ok {
		return Payload{Kind: ShapePoints, Points: points}
	}
	if env.Points != nil {
		return Payload{Kind: ShapePoints, Points: *env.Points}
	}

	return Payload{Kind: ShapeUnknown}
}

func answerEntries(data json.RawMessage) ([]AnswerEntry, bool) {
	if len(data) == 0 {
		return nil, false
	}
	var wrap struct {
		Answers []json.RawMessage `json:"answers"`
	}
	if err := json.Unmarshal(data, &wrap); err != nil || wrap.Answers == nil {
		return nil, false
	}

	entries := make([]AnswerEntry, 0, len(wrap.Answers))
	for _, item := range wrap.Answers {
		var entry AnswerEntry
		if err := json.Unmarshal(item, &entry); err != nil {
			// one malformed entry must not sink the rest
			continue
		}
		entries = append(entries, entry)
	}
	return entries, true
}

func solveRecords(data json.RawMessage) ([]SolveRecord, bool) {
	if len(data) == 0 {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}

	records := make([]SolveRecord, 0, len(items))
	for _, item := range items {
		var rec SolveRecord
		if err := json.Unmarshal(item, &rec); err != nil || rec.Solve == nil {
			continue
		}
		records = append(records, rec)
	}
	return records, true
}

func scalarPoints(data json.RawMessage) (float64, bool) {
	if len(data) == 0 {
		return 0, false
	}
	var wrap struct {
		Points *float64 `json:"points"`
	}
	if err := json.Unmarshal(data, &wrap); err != nil || wrap.Points == nil {
		return 0, false
	}
	return *wrap.Points, true
}

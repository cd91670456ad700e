package model

import "time"

// QuestionResponse is a single (question, answer) selection inside a
// submission.
type QuestionResponse struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	AnswerID   string `json:"answerId" bson:"answerId"`
}

// PollResponse is one respondent's complete answer set for a poll plus
// their identity fields.
type PollResponse struct {
	ID               string             `json:"id" bson:"_id,omitempty"`
	PollID           string             `json:"pollId" bson:"pollId"`
	Name             string             `json:"name" bson:"name"`
	Email            string             `json:"email" bson:"email"`
	EmploymentStatus string             `json:"employment_status" bson:"employmentStatus"`
	Teaching         string             `json:"teaching" bson:"teaching"`
	DateOfBirth      string             `json:"date_of_birth" bson:"dateOfBirth"`
	Address          string             `json:"address" bson:"address"`
	Gender           string             `json:"gender" bson:"gender"`
	Responses        []QuestionResponse `json:"responses" bson:"responses"`
	SubmittedAt      time.Time          `json:"submittedAt" bson:"submittedAt"`
}

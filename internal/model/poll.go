package model

import "time"

// Answer is one selectable option on a question. Points may be zero or
// negative.
type Answer struct {
	ID     string `json:"id" bson:"_id"`
	Text   string `json:"text" bson:"text"`
	Points int    `json:"points" bson:"points"`
}

// Question is a poll item with its selectable options
type Question struct {
	ID      string   `json:"id" bson:"_id"`
	Text    string   `json:"text" bson:"text"`
	Answers []Answer `json:"answers" bson:"answers"`
}

// Poll is a named set of questions offered to respondents
type Poll struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Questions   []Question `json:"questions" bson:"questions"`
	IsActive    bool       `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

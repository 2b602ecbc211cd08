package models

import "time"

// MaxRating is the highest star rating a feedback entry can carry.
const MaxRating = 5

// Feedback is a user comment. It is stored independently of budget data.
type Feedback struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

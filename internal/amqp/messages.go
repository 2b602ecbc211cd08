package amqp

import (
	"encoding/json"
	"time"

	"budgetly/internal/models"
)

// FeedbackSubmittedMessage announces a stored feedback entry to downstream
// consumers (mailers, support inboxes).
type FeedbackSubmittedMessage struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Rating      int       `json:"rating"`
	Text        string    `json:"text"`
	SubmittedAt time.Time `json:"submitted_at"`
	PublishedAt time.Time `json:"published_at"`
}

// NewFeedbackSubmittedMessage creates a message for feedback.
func NewFeedbackSubmittedMessage(feedback models.Feedback) *FeedbackSubmittedMessage {
	return &FeedbackSubmittedMessage{
		Name:        feedback.Name,
		Email:       feedback.Email,
		Rating:      feedback.Rating,
		Text:        feedback.Text,
		SubmittedAt: feedback.Timestamp,
		PublishedAt: time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *FeedbackSubmittedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// FeedbackSubmittedMessageFromJSON creates a message from JSON bytes
func FeedbackSubmittedMessageFromJSON(data []byte) (*FeedbackSubmittedMessage, error) {
	var msg FeedbackSubmittedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

package amqp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"budgetly/internal/logger"
	"budgetly/internal/models"
)

func init() {
	logger.Init("test")
}

type fakePublisher struct {
	exchange string
	key      string
	msg      amqp091.Publishing
	err      error
	calls    int
}

func (f *fakePublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	f.calls++
	f.exchange = exchange
	f.key = key
	f.msg = msg
	return f.err
}

func sampleFeedback() models.Feedback {
	return models.Feedback{
		Name:      "Asha",
		Email:     "asha@example.com",
		Rating:    4,
		Text:      "Great app",
		Timestamp: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublishFeedback(t *testing.T) {
	t.Run("publishes_persistent_json", func(t *testing.T) {
		fake := &fakePublisher{}
		c := &Client{pub: fake, exchangeName: "budgetly", queueName: "feedback"}

		if err := c.NotifyFeedback(sampleFeedback()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if fake.exchange != "budgetly" || fake.key != "feedback" {
			t.Errorf("unexpected routing %s/%s", fake.exchange, fake.key)
		}
		if fake.msg.ContentType != "application/json" || fake.msg.DeliveryMode != amqp091.Persistent {
			t.Errorf("unexpected publishing headers: %+v", fake.msg)
		}

		msg, err := FeedbackSubmittedMessageFromJSON(fake.msg.Body)
		if err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if msg.Email != "asha@example.com" || msg.Rating != 4 {
			t.Errorf("unexpected message: %+v", msg)
		}
		if !msg.SubmittedAt.Equal(sampleFeedback().Timestamp) {
			t.Errorf("expected submitted_at %s, got %s", sampleFeedback().Timestamp, msg.SubmittedAt)
		}
	})

	t.Run("wraps_publish_error", func(t *testing.T) {
		broker := errors.New("channel closed")
		c := &Client{pub: &fakePublisher{err: broker}, exchangeName: "budgetly", queueName: "feedback"}

		err := c.PublishFeedback(context.Background(), sampleFeedback())
		if !errors.Is(err, broker) {
			t.Errorf("expected wrapped broker error, got %v", err)
		}
	})
}

func TestFeedbackSubmittedMessageFromJSON(t *testing.T) {
	if _, err := FeedbackSubmittedMessageFromJSON([]byte("{not json")); err == nil {
		t.Error("expected decode error")
	}
}

func TestCloseWithoutConnection(t *testing.T) {
	c := &Client{}
	if err := c.Close(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

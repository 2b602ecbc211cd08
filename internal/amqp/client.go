// Package amqp publishes feedback submissions to a RabbitMQ exchange.
package amqp

import (
	"context"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"budgetly/internal/logger"
	"budgetly/internal/models"
)

// publishTimeout bounds a single publish call.
const publishTimeout = 5 * time.Second

// publisher is the part of *amqp091.Channel the client publishes through.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// Client publishes messages to a direct exchange bound to a single queue.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	pub          publisher
	exchangeName string
	queueName    string
}

// NewClient dials url and declares the exchange, the queue and their binding.
func NewClient(url, exchangeName, queueName string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		pub:          channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// Routing key is the queue name.
	err = c.channel.QueueBind(c.queueName, c.queueName, c.exchangeName, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishFeedback publishes a FeedbackSubmittedMessage.
func (c *Client) PublishFeedback(ctx context.Context, feedback models.Feedback) error {
	body, err := NewFeedbackSubmittedMessage(feedback).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.pub.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		c.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	logger.Named("amqp").Infow("published feedback message",
		"exchange", c.exchangeName,
		"queue", c.queueName,
		"rating", feedback.Rating,
	)
	return nil
}

// NotifyFeedback publishes feedback with a background context.
func (c *Client) NotifyFeedback(feedback models.Feedback) error {
	return c.PublishFeedback(context.Background(), feedback)
}

// Close closes the channel and the connection.
func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

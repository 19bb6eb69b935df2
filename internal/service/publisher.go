// Package service holds side-effect clients used by the HTTP handlers.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/movie-catalog/internal/queue"
)

// Publisher sends activity events to a durable RabbitMQ queue.  It does not
// log: callers decide what a failed publish means for them.
type Publisher struct {
	url   string
	queue string
	dial  time.Duration
}

func NewPublisher(url, queueName string) *Publisher {
	return &Publisher{url: url, queue: queueName, dial: 3 * time.Second}
}

// Publish dials the broker, declares the queue (idempotent) and sends ev as
// a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, ev queue.ActivityEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("rabbitmq: encode %s: %w", ev.Type, err)
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(p.dial)})
	if err != nil {
		return fmt.Errorf("rabbitmq: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq: declare %s: %w", p.queue, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	// default exchange, routing key = queue name
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq: publish %s: %w", ev.Type, err)
	}
	return nil
}

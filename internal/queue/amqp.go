package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
)

// Broker owns the AMQP connection shared by the consumer and publisher.
type Broker struct {
	conn *amqp.Connection
}

// Dial connects to the broker at url.
func Dial(url string) (*Broker, error) {
	if url == "" {
		return nil, fmt.Errorf("amqp URL is empty")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}
	return &Broker{conn: conn}, nil
}

// Close closes the connection and every channel opened on it.
func (b *Broker) Close() error {
	return b.conn.Close()
}

// Consume declares a durable queue and starts a manual-ack consumer with
// prefetch sized for the worker pool.
func (b *Broker) Consume(queueName string, prefetch int) (<-chan amqp.Delivery, error) {
	ch, err := b.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("error opening channel: %w", err)
	}
	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}
	if err := ch.Qos(max(1, prefetch), 0, false); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to set prefetch: %w", err)
	}
	msgs, err := ch.Consume(
		queueName,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to consume %s: %w", queueName, err)
	}
	return msgs, nil
}

// Enqueue publishes a job to queueName through the default exchange.
func (b *Broker) Enqueue(ctx context.Context, queueName string, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("error opening channel: %w", err)
	}
	defer ch.Close()
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}
	return ch.Publish("", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

// AMQPPublisher publishes updates to a topic exchange. It serializes access
// to its channel.
type AMQPPublisher struct {
	mu       sync.Mutex
	ch       *amqp.Channel
	exchange string
}

// NewPublisher declares the durable topic exchange and returns a publisher for it.
func (b *Broker) NewPublisher(exchange string) (*AMQPPublisher, error) {
	ch, err := b.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("error opening channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &AMQPPublisher{ch: ch, exchange: exchange}, nil
}

// Publish sends update under RoutingKey(update.JobID).
func (p *AMQPPublisher) Publish(ctx context.Context, update Update) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal update: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Publish(p.exchange, RoutingKey(update.JobID), false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   update.Timestamp,
		Body:        body,
	})
}

// Close closes the publisher's channel.
func (p *AMQPPublisher) Close() error {
	return p.ch.Close()
}

// Package events publishes store changes to RabbitMQ.
package events

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// ExchangeName is the topic exchange CRM events are published to.
	ExchangeName = "ex.crm"
	// RoutingKeyPrefix prefixes every routing key, e.g. crm.lead.stage_moved.
	RoutingKeyPrefix = "crm."
)

// Channel is the subset of *amqp.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQ holds the broker connection.
type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

// NewRabbitMQ dials url and declares the CRM exchange.
func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed connecting to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed opening channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed declaring exchange: %w", err)
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

// ErrConnectionClosed is returned by Ping once the broker connection is gone.
var ErrConnectionClosed = errors.New("rabbitmq connection closed")

// Ping reports whether the connection and channel are still open.
func (r *RabbitMQ) Ping(context.Context) error {
	if r.Conn.IsClosed() || r.Ch.IsClosed() {
		return ErrConnectionClosed
	}
	return nil
}

// Close closes the channel and the connection.
func (r *RabbitMQ) Close() error {
	if err := r.Ch.Close(); err != nil {
		_ = r.Conn.Close()
		return err
	}
	return r.Conn.Close()
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/store"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultBufferSize is the number of events held while the broker is slow.
const DefaultBufferSize = 256

const publishTimeout = 5 * time.Second

// Message is the JSON body published for each store event.
type Message struct {
	ID         string           `json:"id"`
	Kind       store.EventKind  `json:"kind"`
	LeadID     string           `json:"leadId,omitempty"`
	FeedID     string           `json:"feedId,omitempty"`
	FromStage  models.DealStage `json:"fromStage,omitempty"`
	ToStage    models.DealStage `json:"toStage,omitempty"`
	Activity   *models.Activity `json:"activity,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// NewMessage converts a store event into its wire form.
func NewMessage(id string, e store.Event) Message {
	return Message{
		ID:         id,
		Kind:       e.Kind,
		LeadID:     e.LeadID,
		FeedID:     e.FeedID,
		FromStage:  e.FromStage,
		ToStage:    e.ToStage,
		Activity:   e.Activity,
		OccurredAt: e.At,
	}
}

// RoutingKey returns the topic routing key for m.
func (m Message) RoutingKey() string {
	return RoutingKeyPrefix + string(m.Kind)
}

// Publisher forwards store events to the broker from a background loop so
// store listeners never block on the network.
type Publisher struct {
	ch    Channel
	ids   domain.IDGenerator
	log   logger.Logger
	queue chan Message
}

// NewPublisher creates a publisher. Start Run before subscribing Listener.
func NewPublisher(ch Channel, ids domain.IDGenerator, log logger.Logger, bufferSize int) *Publisher {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Publisher{
		ch:    ch,
		ids:   ids,
		log:   log,
		queue: make(chan Message, bufferSize),
	}
}

// Listener returns a store listener that queues domain events for
// publishing. Session changes are local and not published. When the
// buffer is full the event is dropped and logged.
func (p *Publisher) Listener() store.Listener {
	return func(e store.Event) {
		if e.Kind == store.EventSessionChanged {
			return
		}
		msg := NewMessage(p.ids.NextID(), e)
		select {
		case p.queue <- msg:
		default:
			p.log.Warn("event buffer full, dropping event", "kind", msg.Kind, "lead_id", msg.LeadID)
		}
	}
}

// Run publishes queued events until ctx is cancelled, then drains what is
// already queued.
func (p *Publisher) Run(ctx context.Context) {
	for {
		select {
		case msg := <-p.queue:
			p.publish(msg)
		case <-ctx.Done():
			for {
				select {
				case msg := <-p.queue:
					p.publish(msg)
				default:
					return
				}
			}
		}
	}
}

func (p *Publisher) publish(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := p.Publish(ctx, msg); err != nil {
		p.log.Error("event publish failed", "kind", msg.Kind, "id", msg.ID, "error", err)
	}
}

// Publish sends a single message to the exchange.
func (p *Publisher) Publish(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		ExchangeName,
		msg.RoutingKey(),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    msg.ID,
			Type:         string(msg.Kind),
			Timestamp:    msg.OccurredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed publishing to rabbitmq: %w", err)
	}
	return nil
}

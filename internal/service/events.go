package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// CheckoutCompletedEvent is published after revenue has been recorded for a
// completed checkout.
type CheckoutCompletedEvent struct {
	StripeSessionID string    `json:"stripe_session_id"`
	AmountCents     int64     `json:"amount_cents"`
	CompletedAt     time.Time `json:"completed_at"`
}

// EventPublisher pushes checkout lifecycle events to Kafka. A nil writer
// disables publishing.
type EventPublisher struct {
	writer *kafka.Writer
}

func NewEventPublisher(writer *kafka.Writer) *EventPublisher {
	return &EventPublisher{writer: writer}
}

func (p *EventPublisher) PublishCheckoutCompleted(ctx context.Context, stripeSessionID string, amountCents int64) error {
	if p == nil || p.writer == nil {
		return nil
	}

	event := CheckoutCompletedEvent{
		StripeSessionID: stripeSessionID,
		AmountCents:     amountCents,
		CompletedAt:     time.Now().UTC(),
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("checkout-completed-%s", stripeSessionID)),
		Value: eventJSON,
	}

	return p.writer.WriteMessages(ctx, msg)
}

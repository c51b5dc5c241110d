package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/srgjo27/concert_booking/internal/core/domain"
)

// Publisher emits booking events on a watermill publisher.
type Publisher struct {
	publisher message.Publisher
}

func NewPublisher(publisher message.Publisher) *Publisher {
	return &Publisher{publisher: publisher}
}

func (p *Publisher) BookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	return p.publish(ctx, TopicBookingConfirmed, NewBookingConfirmed(booking))
}

func (p *Publisher) BookingCancelled(ctx context.Context, booking *domain.Booking) error {
	return p.publish(ctx, TopicBookingCancelled, NewBookingCancelled(booking))
}

func (p *Publisher) publish(ctx context.Context, topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling %s event: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("publishing message to topic '%s': %w", topic, err)
	}

	return nil
}

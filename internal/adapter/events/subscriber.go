package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/sirupsen/logrus"
)

// SubscribeLog subscribes to both booking topics before returning, so no
// event published afterwards is missed. The returned function logs events
// until ctx is done or a subscription closes.
func SubscribeLog(ctx context.Context, subscriber message.Subscriber, logger logrus.FieldLogger) (func() error, error) {
	confirmed, err := subscriber.Subscribe(ctx, TopicBookingConfirmed)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", TopicBookingConfirmed, err)
	}
	cancelled, err := subscriber.Subscribe(ctx, TopicBookingCancelled)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", TopicBookingCancelled, err)
	}

	return func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case msg, ok := <-confirmed:
				if !ok {
					return nil
				}
				logger.WithField("payload", string(msg.Payload)).Info("booking confirmed")
				msg.Ack()
			case msg, ok := <-cancelled:
				if !ok {
					return nil
				}
				logger.WithField("payload", string(msg.Payload)).Info("booking cancelled")
				msg.Ack()
			}
		}
	}, nil
}

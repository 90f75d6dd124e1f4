package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-chat-workspace-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IEventBus interface {
	Publish(ctx context.Context, event events.Event) error
}

// eventBus puts events on an in-process watermill topic. Delivery to
// WebSocket clients and NATS happens in the relay.
type eventBus struct {
	publisher message.Publisher
	topic     string
}

func NewEventBus(publisher message.Publisher, topic string) IEventBus {
	return &eventBus{
		publisher: publisher,
		topic:     topic,
	}
}

func (b *eventBus) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(events.ToEnvelope(event))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventType(), err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return b.publisher.Publish(b.topic, msg)
}

package service

import (
	"context"
	"encoding/json"

	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// UserNotifier pushes a message to every connection a user has open.
type UserNotifier interface {
	Send(userId uuid.UUID, messageType string, data interface{})
}

// ExternalPublisher forwards events outside the process. May be nil.
type ExternalPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IEventRelayService interface {
	Start(ctx context.Context) error
}

type eventRelayService struct {
	subscriber message.Subscriber
	topic      string
	notifier   UserNotifier
	external   ExternalPublisher
	logger     logger.ILogger
}

func NewEventRelayService(subscriber message.Subscriber, topic string, notifier UserNotifier, external ExternalPublisher, log logger.ILogger) IEventRelayService {
	return &eventRelayService{
		subscriber: subscriber,
		topic:      topic,
		notifier:   notifier,
		external:   external,
		logger:     log,
	}
}

func (s *eventRelayService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.relay(ctx, msg)
		}
	}()
	return nil
}

func (s *eventRelayService) relay(ctx context.Context, msg *message.Message) {
	// Always ack: a bad or undeliverable event is not worth redelivering.
	defer msg.Ack()

	var env events.Envelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		s.logger.Error("EventRelay", "Failed to decode event", map[string]interface{}{"error": err.Error()})
		return
	}

	if raw, ok := env.Data["user_id"].(string); ok && s.notifier != nil {
		if userId, err := uuid.Parse(raw); err == nil {
			s.notifier.Send(userId, env.Type, env.Data)
		}
	}

	if s.external != nil {
		if err := s.external.Publish(ctx, env.Event()); err != nil {
			s.logger.Warn("EventRelay", "Failed to forward event to NATS", map[string]interface{}{
				"type":  env.Type,
				"error": err.Error(),
			})
		}
	}
}

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"idea-shaper-be/internal/pkg/logger"
	"idea-shaper-be/internal/websocket"
	"idea-shaper-be/pkg/events"
	"idea-shaper-be/pkg/nats"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process event bus: every conversation
// event is pushed to connected websocket clients and mirrored to NATS
// for external consumers. Both sinks are best effort.
type consumerService struct {
	subscriber message.Subscriber
	topic      string
	natsPub    *nats.Publisher
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topic string,
	natsPub *nats.Publisher,
	hub *websocket.Hub,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topic:      topic,
		natsPub:    natsPub,
		hub:        hub,
		logger:     log,
	}
}

func (s *consumerService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	for msg := range messages {
		s.handle(ctx, msg)
		msg.Ack()
	}
	return nil
}

func (s *consumerService) handle(ctx context.Context, msg *message.Message) {
	var envelope struct {
		Type    string                 `json:"type"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		s.logger.Error("ConsumerService", "Malformed event payload", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	// Push to websocket clients watching this session
	if s.hub != nil {
		if key, ok := envelope.Payload["session_key"].(string); ok && key != "" {
			s.hub.Send(key, websocket.ConversationUpdate{
				Type:    envelope.Type,
				Payload: envelope.Payload,
			})
		}
	}

	// Mirror to NATS for external consumers
	if s.natsPub != nil {
		event := events.BaseEvent{
			Type:       envelope.Type,
			Data:       envelope.Payload,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("ConsumerService", "NATS mirror failed", map[string]interface{}{
				"event": envelope.Type,
				"error": err.Error(),
			})
		}
	}
}

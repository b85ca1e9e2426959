package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"idea-shaper-be/pkg/events"
)

type IPublisherService interface {
	PublishEvent(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topic     string
	publisher message.Publisher
}

func NewPublisherService(topic string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topic:     topic,
		publisher: publisher,
	}
}

type eventEnvelope struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload"`
	At      string                 `json:"at"`
}

func (s *publisherService) PublishEvent(_ context.Context, event events.Event) error {
	data, err := json.Marshal(eventEnvelope{
		Type:    event.EventType(),
		Payload: event.Payload(),
		At:      event.Timestamp().Format("2006-01-02T15:04:05Z07:00"),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	return s.publisher.Publish(s.topic, msg)
}

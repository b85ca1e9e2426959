package service

import (
	"context"
	"fmt"

	"idea-shaper-be/internal/pkg/logger"
	"idea-shaper-be/internal/pkg/mailer"
	"idea-shaper-be/pkg/events"
	pktNats "idea-shaper-be/pkg/nats"
)

// RegistrationService is the background worker behind user signups. It
// consumes USER_REGISTERED events from the bus through a durable
// consumer, so welcome mails survive restarts and NATS redelivers on
// failure.
type RegistrationService struct {
	subscriber *pktNats.Subscriber
	email      mailer.IEmailService
	logger     logger.ILogger
}

func NewRegistrationService(sub *pktNats.Subscriber, email mailer.IEmailService, log logger.ILogger) *RegistrationService {
	return &RegistrationService{
		subscriber: sub,
		email:      email,
		logger:     log,
	}
}

// Start begins listening for registration events.
func (s *RegistrationService) Start() {
	subject := fmt.Sprintf("events.%s", events.TypeUserRegistered)
	if err := s.subscriber.Subscribe(subject, "welcome-mail-worker", s.handleEvent); err != nil {
		s.logger.Error("RegistrationService", "Failed to start registration subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("RegistrationService", fmt.Sprintf("Registration worker started, listening to %s", subject), nil)
}

func (s *RegistrationService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	email, _ := payload["email"].(string)
	if email == "" {
		s.logger.Warn("RegistrationService", "Registration event without email, dropping", map[string]interface{}{"type": event.EventType()})
		return nil
	}
	fullName, _ := payload["full_name"].(string)

	if s.email == nil {
		return nil
	}
	if err := s.email.SendWelcome(email, fullName); err != nil {
		s.logger.Error("RegistrationService", "Failed to send welcome mail", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return err // NATS redelivers on error
	}

	s.logger.Info("RegistrationService", "Welcome mail sent", map[string]interface{}{"email": email})
	return nil
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"idea-shaper-be/pkg/events"
)

type recordingMailer struct {
	sentTo   string
	sentName string
	err      error
}

func (m *recordingMailer) SendWelcome(toEmail, name string) error {
	m.sentTo = toEmail
	m.sentName = name
	return m.err
}

type quietLogger struct{}

func (quietLogger) Debug(module, message string, details map[string]interface{}) {}
func (quietLogger) Info(module, message string, details map[string]interface{})  {}
func (quietLogger) Warn(module, message string, details map[string]interface{})  {}
func (quietLogger) Error(module, message string, details map[string]interface{}) {}
func (quietLogger) Sync() error                                                  { return nil }

func registrationEvent(data map[string]interface{}) events.Event {
	return events.BaseEvent{
		Type:       "events." + events.TypeUserRegistered,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func TestRegistrationHandleEvent(t *testing.T) {
	mail := &recordingMailer{}
	svc := NewRegistrationService(nil, mail, quietLogger{})

	err := svc.handleEvent(context.Background(), registrationEvent(map[string]interface{}{
		"email":     "ada@example.com",
		"full_name": "Ada Lovelace",
	}))
	if err != nil {
		t.Fatalf("handleEvent returned %v", err)
	}
	if mail.sentTo != "ada@example.com" || mail.sentName != "Ada Lovelace" {
		t.Errorf("welcome mail sent to %q (%q), want ada@example.com (Ada Lovelace)", mail.sentTo, mail.sentName)
	}
}

func TestRegistrationHandleEventMissingEmail(t *testing.T) {
	mail := &recordingMailer{}
	svc := NewRegistrationService(nil, mail, quietLogger{})

	err := svc.handleEvent(context.Background(), registrationEvent(map[string]interface{}{
		"full_name": "No Address",
	}))
	if err != nil {
		t.Fatalf("event without email should be dropped, got %v", err)
	}
	if mail.sentTo != "" {
		t.Errorf("mail sent to %q despite missing email", mail.sentTo)
	}
}

func TestRegistrationHandleEventMailerFailure(t *testing.T) {
	mail := &recordingMailer{err: errors.New("smtp down")}
	svc := NewRegistrationService(nil, mail, quietLogger{})

	err := svc.handleEvent(context.Background(), registrationEvent(map[string]interface{}{
		"email": "ada@example.com",
	}))
	if err == nil {
		t.Fatal("mailer failure should propagate so the bus redelivers")
	}
}

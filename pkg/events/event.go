package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CONVERSATION_STARTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used across the system.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Conversation lifecycle event types.
const (
	TypeConversationStarted = "CONVERSATION_STARTED"
	TypeMessageProcessed    = "MESSAGE_PROCESSED"
	TypeStageAdvanced       = "STAGE_ADVANCED"
	TypeProposalGenerated   = "PROPOSAL_GENERATED"
	TypeUserRegistered      = "USER_REGISTERED"
)

func NewConversationStarted(sessionKey string) Event {
	return BaseEvent{
		Type:       TypeConversationStarted,
		Data:       map[string]interface{}{"session_key": sessionKey},
		OccurredAt: time.Now().UTC(),
	}
}

func NewMessageProcessed(sessionKey, stage string, interactionCount int) Event {
	return BaseEvent{
		Type: TypeMessageProcessed,
		Data: map[string]interface{}{
			"session_key":       sessionKey,
			"stage":             stage,
			"interaction_count": interactionCount,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func NewStageAdvanced(sessionKey, fromStage, toStage string) Event {
	return BaseEvent{
		Type: TypeStageAdvanced,
		Data: map[string]interface{}{
			"session_key": sessionKey,
			"from":        fromStage,
			"to":          toStage,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func NewProposalGenerated(sessionKey, title string) Event {
	return BaseEvent{
		Type: TypeProposalGenerated,
		Data: map[string]interface{}{
			"session_key": sessionKey,
			"title":       title,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func NewUserRegistered(email, fullName string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"email":     email,
			"full_name": fullName,
		},
		OccurredAt: time.Now().UTC(),
	}
}

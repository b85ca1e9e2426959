package dialog

import (
	"time"

	"idea-shaper-be/internal/constant"
)

// Message is one entry of a conversation transcript. Persona and
// Provider are only set on multi-perspective assistant replies.
type Message struct {
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Persona     string    `json:"persona,omitempty"`
	Provider    string    `json:"provider,omitempty"`
}

// Idea is the structured understanding accumulated alongside the raw
// transcript. Fields fill in as the conversation progresses.
type Idea struct {
	Problem      string   `json:"problem,omitempty"`
	Audience     string   `json:"audience,omitempty"`
	Solution     string   `json:"solution,omitempty"`
	Impact       string   `json:"impact,omitempty"`
	Constraints  []string `json:"constraints,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// State is the full mutable conversation state the engine operates on.
// It is a plain value object; persistence lives elsewhere.
type State struct {
	SessionID        string    `json:"session_id"`
	Stage            Stage     `json:"stage"`
	InteractionCount int       `json:"interaction_count"`
	Messages         []Message `json:"messages"`
	Idea             Idea      `json:"idea"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewState starts a conversation at the initial stage with zero turns.
func NewState(sessionID string) *State {
	return &State{
		SessionID: sessionID,
		Stage:     StageInitial,
		UpdatedAt: time.Now().UTC(),
	}
}

// AppendUser records a user turn. This is the only operation that
// advances the interaction count.
func (s *State) AppendUser(content string) {
	s.Messages = append(s.Messages, Message{
		Role:      constant.ChatMessageRoleUser,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
	s.InteractionCount++
	s.UpdatedAt = time.Now().UTC()
}

// AppendAssistant records a single-perspective assistant reply.
func (s *State) AppendAssistant(content string, suggestions []string) {
	s.Messages = append(s.Messages, Message{
		Role:        constant.ChatMessageRoleAssistant,
		Content:     content,
		Timestamp:   time.Now().UTC(),
		Suggestions: suggestions,
	})
	s.UpdatedAt = time.Now().UTC()
}

// AppendPerspective records one persona's reply from a multi-perspective
// dispatch, labeled with the persona and the provider that produced it.
func (s *State) AppendPerspective(content, personaID, providerID string) {
	s.Messages = append(s.Messages, Message{
		Role:      constant.ChatMessageRoleAssistant,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Persona:   personaID,
		Provider:  providerID,
	})
	s.UpdatedAt = time.Now().UTC()
}

// Recent returns up to k trailing messages, excluding the final skip
// entries. The responder uses this to build context windows that leave
// out the user message it just appended.
func (s *State) Recent(k, skip int) []Message {
	end := len(s.Messages) - skip
	if end < 0 {
		end = 0
	}
	start := end - k
	if start < 0 {
		start = 0
	}
	return s.Messages[start:end]
}

// LastAssistant returns the most recent assistant message, if any.
func (s *State) LastAssistant() (Message, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == constant.ChatMessageRoleAssistant {
			return s.Messages[i], true
		}
	}
	return Message{}, false
}

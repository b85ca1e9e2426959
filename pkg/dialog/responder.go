package dialog

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"idea-shaper-be/internal/constant"
	"idea-shaper-be/pkg/llm"
	"idea-shaper-be/pkg/llm/factory"
	"idea-shaper-be/pkg/persona"
)

const (
	// DefaultGenerationTimeout bounds a single provider call.
	DefaultGenerationTimeout = 20 * time.Second

	// contextWindow is how many trailing messages are sent as context.
	contextWindow = 5

	// minReplyLength is the quality floor. Anything shorter after
	// trimming is treated as a failed generation.
	minReplyLength = 10
)

// Reply is the outcome of processing one user turn. Content is always
// non-empty; failures surface as fallback text, never as errors.
type Reply struct {
	Content     string
	Suggestions []string
	Stage       Stage
	Advanced    bool
	Provider    string
	Persona     string
}

// Responder turns a user message into exactly one assistant reply,
// mutating the conversation state as it goes.
type Responder struct {
	registry *factory.Registry
	engine   *StageEngine
	timeout  time.Duration
}

// NewResponder wires a responder. A non-positive timeout falls back to
// the default.
func NewResponder(registry *factory.Registry, engine *StageEngine, timeout time.Duration) *Responder {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &Responder{registry: registry, engine: engine, timeout: timeout}
}

// Respond processes one user turn: append the user message, generate
// one reply under the current stage's system prompt, evaluate stage
// advancement, and append the assistant message. It never returns an
// error; degraded paths produce scripted fallback text.
func (r *Responder) Respond(ctx context.Context, s *State, userMessage string) Reply {
	return r.respond(ctx, s, userMessage, r.engine.SystemPromptFor(s.Stage), "", "")
}

// RespondAs is Respond under a persona's system prompt instead of the
// stage prompt. The turn still counts toward stage advancement. An
// empty preferredProvider falls back to the default pick.
func (r *Responder) RespondAs(ctx context.Context, s *State, userMessage string, p persona.Persona, preferredProvider string) Reply {
	return r.respond(ctx, s, userMessage, p.SystemPrompt, p.ID, preferredProvider)
}

func (r *Responder) respond(ctx context.Context, s *State, userMessage, systemPrompt, personaID, preferredProvider string) Reply {
	s.AppendUser(userMessage)

	stage := s.Stage
	content, providerID := r.generate(ctx, s, userMessage, systemPrompt, preferredProvider)
	if content == "" {
		content = r.engine.FallbackFor(stage, userMessage)
		providerID = ""
	}

	suggestions := r.engine.SuggestionsFor(stage)

	advanced := false
	if r.engine.ShouldAdvance(s) {
		before := s.Stage
		r.engine.Advance(s)
		advanced = s.Stage != before
	}

	if personaID != "" {
		s.AppendPerspective(content, personaID, providerID)
	} else {
		s.AppendAssistant(content, suggestions)
	}

	return Reply{
		Content:     content,
		Suggestions: suggestions,
		Stage:       s.Stage,
		Advanced:    advanced,
		Provider:    providerID,
		Persona:     personaID,
	}
}

// generate runs one provider call. An empty return means failure and
// the caller must fall back.
func (r *Responder) generate(ctx context.Context, s *State, userMessage, systemPrompt, preferredProvider string) (string, string) {
	provider := r.registry.Pick(0)
	if preferredProvider != "" {
		if p, ok := r.registry.Get(preferredProvider); ok {
			provider = p
		}
	}
	if provider == nil {
		return "", ""
	}

	messages := buildMessages(s, userMessage, systemPrompt)

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	content, err := provider.Chat(callCtx, messages)
	if err != nil {
		log.Printf("[WARN] provider %s failed: %v", provider.Name(), err)
		return "", ""
	}
	if len(strings.TrimSpace(content)) < minReplyLength {
		return "", ""
	}
	return content, provider.Name()
}

// buildMessages assembles the prompt: system prompt, recent context
// (excluding the user message just appended), then the user message.
func buildMessages(s *State, userMessage, systemPrompt string) []llm.Message {
	recent := s.Recent(contextWindow, 1)

	messages := make([]llm.Message, 0, len(recent)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, m := range recent {
		role := llm.RoleAssistant
		if m.Role == constant.ChatMessageRoleUser {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMessage})
	return messages
}

// formatContext renders messages as a plain transcript block for
// providers that take a single prompt string.
func formatContext(messages []Message) string {
	var b strings.Builder
	for _, m := range messages {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	return b.String()
}

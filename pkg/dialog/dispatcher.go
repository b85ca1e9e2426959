package dialog

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"idea-shaper-be/pkg/llm"
	"idea-shaper-be/pkg/llm/factory"
	"idea-shaper-be/pkg/persona"
)

// Perspective is one persona's take on the user's message.
type Perspective struct {
	PersonaID   string `json:"persona_id"`
	PersonaName string `json:"persona_name"`
	Provider    string `json:"provider"`
	Content     string `json:"content"`
}

// Dispatcher fans one user message out to several personas at once,
// assigning providers round-robin. One slow or broken provider costs
// only its own perspective.
type Dispatcher struct {
	registry *factory.Registry
	timeout  time.Duration
}

// NewDispatcher wires a dispatcher. A non-positive timeout falls back
// to the default generation timeout.
func NewDispatcher(registry *factory.Registry, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &Dispatcher{registry: registry, timeout: timeout}
}

// Dispatch appends the user message once, then queries every persona
// concurrently. Persona i gets provider i mod K, so providers cycle
// when personas outnumber them and the extras idle when they don't.
// Per-persona failures are logged and skipped. Results come back in
// persona order regardless of completion order, and successful ones
// are appended to the transcript in that same order. Dispatch never
// touches the stage.
func (d *Dispatcher) Dispatch(ctx context.Context, s *State, userMessage string, personas []persona.Persona) []Perspective {
	s.AppendUser(userMessage)

	if len(d.registry.Available()) == 0 {
		return []Perspective{}
	}

	contextBlock := formatContext(s.Recent(contextWindow, 1))

	type slot struct {
		content  string
		provider string
		err      error
	}
	slots := make([]slot, len(personas))

	var wg sync.WaitGroup
	for i, p := range personas {
		provider := d.registry.Pick(i)

		wg.Add(1)
		go func(i int, p persona.Persona, provider llm.Provider) {
			defer wg.Done()
			content, err := d.ask(ctx, provider, p, contextBlock, userMessage)
			slots[i] = slot{content: content, provider: provider.Name(), err: err}
		}(i, p, provider)
	}
	wg.Wait()

	out := make([]Perspective, 0, len(personas))
	for i, p := range personas {
		if slots[i].err != nil {
			log.Printf("[WARN] persona %s via %s failed: %v", p.ID, slots[i].provider, slots[i].err)
			continue
		}
		s.AppendPerspective(slots[i].content, p.ID, slots[i].provider)
		out = append(out, Perspective{
			PersonaID:   p.ID,
			PersonaName: p.Name,
			Provider:    slots[i].provider,
			Content:     slots[i].content,
		})
	}
	return out
}

func (d *Dispatcher) ask(ctx context.Context, provider llm.Provider, p persona.Persona, contextBlock, userMessage string) (string, error) {
	prompt := fmt.Sprintf("%s\n\nConversation context:\n%s\nUser: %s", p.SystemPrompt, contextBlock, userMessage)

	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	content, err := provider.Generate(callCtx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty response from %s", provider.Name())
	}
	return content, nil
}

package dialog

import (
	"context"
	"strings"
	"testing"

	"idea-shaper-be/pkg/llm"
	"idea-shaper-be/pkg/persona"
)

func newTestResponder(cadence int, suggestions bool, providers ...llm.Provider) (*Responder, *State) {
	engine := NewStageEngine(cadence, suggestions)
	return NewResponder(registryOf(providers...), engine, 0), NewState("test-session")
}

func TestRespondNeverEmpty(t *testing.T) {
	tests := []struct {
		name     string
		provider llm.Provider
	}{
		{"no provider", nil},
		{"provider error", &fakeProvider{name: "gemini", err: errProviderDown}},
		{"short reply", &fakeProvider{name: "gemini", reply: "ok."}},
		{"whitespace reply", &fakeProvider{name: "gemini", reply: "   \n\t  "}},
		{"normal reply", &fakeProvider{name: "gemini", reply: "That sounds promising. What problem does it solve?"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r *Responder
			var s *State
			if tt.provider == nil {
				r, s = newTestResponder(3, true)
			} else {
				r, s = newTestResponder(3, true, tt.provider)
			}
			reply := r.Respond(context.Background(), s, "I have an idea")
			if strings.TrimSpace(reply.Content) == "" {
				t.Fatal("reply content must never be empty")
			}
		})
	}
}

func TestRespondMutatesState(t *testing.T) {
	r, s := newTestResponder(3, true, &fakeProvider{name: "gemini", reply: "Tell me more about the users you have in mind."})

	r.Respond(context.Background(), s, "An app for plant care")

	if len(s.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(s.Messages))
	}
	if s.InteractionCount != 1 {
		t.Errorf("interaction count = %d, want 1", s.InteractionCount)
	}
	if s.Messages[0].Role != "user" || s.Messages[1].Role != "assistant" {
		t.Errorf("roles = %s, %s; want user, assistant", s.Messages[0].Role, s.Messages[1].Role)
	}
}

func TestRespondAdvancesOnCadence(t *testing.T) {
	r, s := newTestResponder(3, true, &fakeProvider{name: "gemini", reply: "Interesting. Walk me through how that would work."})

	var last Reply
	for i := 0; i < 3; i++ {
		last = r.Respond(context.Background(), s, "more detail")
	}

	if s.Stage != StageExploring {
		t.Errorf("stage after 3 turns = %s, want exploring", s.Stage)
	}
	if !last.Advanced {
		t.Error("third reply should report advancement")
	}

	for i := 0; i < 2; i++ {
		last = r.Respond(context.Background(), s, "more detail")
		if last.Advanced {
			t.Errorf("turn %d should not advance", s.InteractionCount)
		}
	}
}

func TestRespondTerminalStageStable(t *testing.T) {
	r, s := newTestResponder(1, true, &fakeProvider{name: "gemini", reply: "We are at the end of the road for refinement."})
	for i := 0; i < 12; i++ {
		r.Respond(context.Background(), s, "keep going")
	}
	if s.Stage != StageProposal {
		t.Errorf("stage = %s, want proposal", s.Stage)
	}
}

func TestRespondSuggestions(t *testing.T) {
	r, s := newTestResponder(3, true, &fakeProvider{name: "gemini", reply: "Sounds good. Who is the first customer?"})
	reply := r.Respond(context.Background(), s, "a meal prep service")
	if len(reply.Suggestions) == 0 {
		t.Error("expected suggestions for the initial stage")
	}

	rOff, sOff := newTestResponder(3, false, &fakeProvider{name: "gemini", reply: "Sounds good. Who is the first customer?"})
	if got := rOff.Respond(context.Background(), sOff, "a meal prep service"); got.Suggestions != nil {
		t.Error("suggestions should be nil when disabled")
	}
}

func TestRespondAsLabelsPersona(t *testing.T) {
	p, _ := persona.Get(persona.BusinessAnalyst)
	r, s := newTestResponder(3, true, &fakeProvider{name: "openai", reply: "From a revenue standpoint, subscriptions fit best here."})

	reply := r.RespondAs(context.Background(), s, "how would this make money?", p, "")

	if reply.Persona != persona.BusinessAnalyst {
		t.Errorf("persona = %q, want %q", reply.Persona, persona.BusinessAnalyst)
	}
	if reply.Provider != "openai" {
		t.Errorf("provider = %q, want openai", reply.Provider)
	}
	if s.Messages[1].Persona != persona.BusinessAnalyst {
		t.Errorf("transcript persona = %q, want %q", s.Messages[1].Persona, persona.BusinessAnalyst)
	}
}

func TestBuildMessagesRoles(t *testing.T) {
	s := NewState("test-session")
	s.AppendUser("an app for plant care")
	s.AppendAssistant("Who would use it?", nil)
	s.AppendUser("busy plant owners")

	got := buildMessages(s, "busy plant owners", "prompt")

	wantRoles := []string{llm.RoleSystem, llm.RoleUser, llm.RoleAssistant, llm.RoleUser}
	if len(got) != len(wantRoles) {
		t.Fatalf("messages = %d, want %d", len(got), len(wantRoles))
	}
	for i, want := range wantRoles {
		if got[i].Role != want {
			t.Errorf("message %d role = %q, want %q", i, got[i].Role, want)
		}
	}
}

// Full first-contact walkthrough: a vague idea, no working provider,
// three turns at the default cadence.
func TestDogWalkerScenario(t *testing.T) {
	r, s := newTestResponder(3, true, &fakeProvider{name: "gemini", err: errProviderDown})

	first := r.Respond(context.Background(), s, "I want to build an app for dog walkers")
	if !strings.Contains(first.Content, "?") {
		t.Errorf("first fallback should contain a question, got %q", first.Content)
	}

	turns := []string{
		"Dog owners who work long hours need someone they trust",
		"It would match owners with vetted walkers nearby",
	}
	for _, msg := range turns {
		reply := r.Respond(context.Background(), s, msg)
		if strings.TrimSpace(reply.Content) == "" {
			t.Fatal("every turn must produce a reply")
		}
	}

	if s.Stage != StageExploring {
		t.Errorf("stage after 3 exchanges = %s, want exploring", s.Stage)
	}
	if s.InteractionCount != 3 {
		t.Errorf("interaction count = %d, want 3", s.InteractionCount)
	}
	if len(s.Messages) != 6 {
		t.Errorf("messages = %d, want 6", len(s.Messages))
	}
}

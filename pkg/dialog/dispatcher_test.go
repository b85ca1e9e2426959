package dialog

import (
	"context"
	"testing"

	"idea-shaper-be/pkg/llm"
	"idea-shaper-be/pkg/persona"
)

func TestDispatchNoProviders(t *testing.T) {
	d := NewDispatcher(registryOf(), 0)
	s := NewState("s")

	got := d.Dispatch(context.Background(), s, "what do you all think?", persona.KeyPersonas())

	if len(got) != 0 {
		t.Fatalf("perspectives = %d, want 0", len(got))
	}
	if len(s.Messages) != 1 {
		t.Fatalf("messages = %d, want 1 (the user message)", len(s.Messages))
	}
	if s.Messages[0].Role != "user" {
		t.Errorf("message role = %s, want user", s.Messages[0].Role)
	}
	if s.InteractionCount != 1 {
		t.Errorf("interaction count = %d, want 1", s.InteractionCount)
	}
}

func TestDispatchRoundRobin(t *testing.T) {
	tests := []struct {
		name      string
		providers []llm.Provider
		want      []string
	}{
		{
			"one provider three personas",
			[]llm.Provider{&fakeProvider{name: "gemini", reply: "a perspective"}},
			[]string{"gemini", "gemini", "gemini"},
		},
		{
			"three providers three personas",
			[]llm.Provider{
				&fakeProvider{name: "gemini", reply: "a perspective"},
				&fakeProvider{name: "openai", reply: "a perspective"},
				&fakeProvider{name: "ollama", reply: "a perspective"},
			},
			[]string{"gemini", "openai", "ollama"},
		},
		{
			"two providers three personas",
			[]llm.Provider{
				&fakeProvider{name: "gemini", reply: "a perspective"},
				&fakeProvider{name: "openai", reply: "a perspective"},
			},
			[]string{"gemini", "openai", "gemini"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(registryOf(tt.providers...), 0)
			s := NewState("s")

			got := d.Dispatch(context.Background(), s, "evaluate this idea", persona.KeyPersonas())

			if len(got) != len(tt.want) {
				t.Fatalf("perspectives = %d, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].Provider != want {
					t.Errorf("perspective[%d].Provider = %s, want %s", i, got[i].Provider, want)
				}
			}
		})
	}
}

func TestDispatchPersonaOrder(t *testing.T) {
	d := NewDispatcher(registryOf(&fakeProvider{name: "gemini", reply: "a perspective"}), 0)
	s := NewState("s")

	got := d.Dispatch(context.Background(), s, "evaluate this idea", persona.KeyPersonas())

	want := []string{persona.SocraticMentor, persona.BusinessAnalyst, persona.TechnicalArchitect}
	for i, id := range want {
		if got[i].PersonaID != id {
			t.Errorf("perspective[%d] = %s, want %s", i, got[i].PersonaID, id)
		}
	}
}

func TestDispatchToleratesSingleFailure(t *testing.T) {
	d := NewDispatcher(registryOf(
		&fakeProvider{name: "gemini", reply: "a perspective"},
		&fakeProvider{name: "openai", err: errProviderDown},
	), 0)
	s := NewState("s")

	got := d.Dispatch(context.Background(), s, "evaluate this idea", persona.KeyPersonas())

	// personas 0 and 2 hit gemini, persona 1 hit the broken openai
	if len(got) != 2 {
		t.Fatalf("perspectives = %d, want 2", len(got))
	}
	if got[0].PersonaID != persona.SocraticMentor || got[1].PersonaID != persona.TechnicalArchitect {
		t.Errorf("surviving personas = %s, %s", got[0].PersonaID, got[1].PersonaID)
	}

	// transcript: 1 user + 2 surviving perspectives
	if len(s.Messages) != 3 {
		t.Errorf("messages = %d, want 3", len(s.Messages))
	}
}

func TestDispatchDoesNotAdvanceStage(t *testing.T) {
	d := NewDispatcher(registryOf(&fakeProvider{name: "gemini", reply: "a perspective"}), 0)
	s := NewState("s")
	s.InteractionCount = 2 // next user turn lands on the cadence boundary

	d.Dispatch(context.Background(), s, "evaluate this idea", persona.KeyPersonas())

	if s.Stage != StageInitial {
		t.Errorf("stage = %s, want initial (dispatch is advancement-neutral)", s.Stage)
	}
}

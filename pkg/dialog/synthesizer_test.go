package dialog

import (
	"context"
	"testing"
)

func transcriptState() *State {
	s := NewState("s")
	s.AppendUser("I want to build a plant care reminder app")
	s.AppendAssistant("Who forgets to water their plants most often?", nil)
	s.AppendUser("Busy professionals with lots of houseplants")
	return s
}

func TestSynthesizePlaceholderPaths(t *testing.T) {
	tests := []struct {
		name     string
		registry func() *Synthesizer
	}{
		{"no provider", func() *Synthesizer {
			return NewSynthesizer(registryOf(), 0)
		}},
		{"provider error", func() *Synthesizer {
			return NewSynthesizer(registryOf(&fakeProvider{name: "gemini", err: errProviderDown}), 0)
		}},
		{"garbage reply", func() *Synthesizer {
			return NewSynthesizer(registryOf(&fakeProvider{name: "gemini", reply: "I cannot help with that."}), 0)
		}},
		{"invalid json", func() *Synthesizer {
			return NewSynthesizer(registryOf(&fakeProvider{name: "gemini", reply: `{"title": "x", "summary":`}), 0)
		}},
		{"missing title", func() *Synthesizer {
			return NewSynthesizer(registryOf(&fakeProvider{name: "gemini", reply: `{"summary": "no title here"}`}), 0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.registry().Synthesize(context.Background(), transcriptState())
			if got.Title != "Project Idea" {
				t.Errorf("title = %q, want placeholder", got.Title)
			}
			if len(got.Features) != 3 || len(got.NextSteps) != 3 {
				t.Errorf("placeholder shape wrong: %d features, %d next steps", len(got.Features), len(got.NextSteps))
			}
		})
	}
}

func TestSynthesizeParsesFencedJSON(t *testing.T) {
	reply := "```json\n" + `{
  "title": "PlantPal",
  "summary": "A reminder app that keeps houseplants alive.",
  "problem": "Busy people forget watering schedules",
  "solution": "Per-plant schedules with push reminders",
  "features": ["Plant profiles", "Smart reminders", "Care history"],
  "tech_stack": ["Flutter", "Go", "PostgreSQL"],
  "next_steps": ["Sketch the UI", "Build a prototype", "Test with plant owners"]
}` + "\n```"

	sy := NewSynthesizer(registryOf(&fakeProvider{name: "gemini", reply: reply}), 0)
	got := sy.Synthesize(context.Background(), transcriptState())

	if got.Title != "PlantPal" {
		t.Errorf("title = %q, want PlantPal", got.Title)
	}
	if len(got.Features) != 3 {
		t.Errorf("features = %d, want 3", len(got.Features))
	}
	if got.TechStack[0] != "Flutter" {
		t.Errorf("tech stack[0] = %q, want Flutter", got.TechStack[0])
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestPlaceholderProposalContract(t *testing.T) {
	p := PlaceholderProposal()
	if p.Title == "" || p.Summary == "" || p.Problem == "" || p.Solution == "" {
		t.Error("placeholder must fill every scalar field")
	}
}

package dialog

import (
	"strings"
	"testing"
)

func TestShouldAdvanceBoundaries(t *testing.T) {
	e := NewStageEngine(3, true)
	tests := []struct {
		count int
		want  bool
	}{
		{0, false},
		{1, false},
		{2, false},
		{3, true},
		{4, false},
		{6, true},
		{7, false},
	}
	for _, tt := range tests {
		s := NewState("s")
		s.InteractionCount = tt.count
		if got := e.ShouldAdvance(s); got != tt.want {
			t.Errorf("ShouldAdvance(count=%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestCadenceDefault(t *testing.T) {
	if got := NewStageEngine(0, true).Cadence(); got != DefaultCadence {
		t.Errorf("Cadence() = %d, want %d", got, DefaultCadence)
	}
	if got := NewStageEngine(-2, true).Cadence(); got != DefaultCadence {
		t.Errorf("Cadence() = %d, want %d", got, DefaultCadence)
	}
	if got := NewStageEngine(5, true).Cadence(); got != 5 {
		t.Errorf("Cadence() = %d, want 5", got)
	}
}

func TestSystemPromptForEveryStage(t *testing.T) {
	e := NewStageEngine(3, true)
	stages := []Stage{StageInitial, StageExploring, StageStructuring, StageAlternatives, StageRefinement, StageProposal}
	for _, st := range stages {
		if e.SystemPromptFor(st) == "" {
			t.Errorf("empty system prompt for stage %s", st)
		}
	}
	if got := e.SystemPromptFor(Stage("bogus")); got != e.SystemPromptFor(StageInitial) {
		t.Error("unknown stage should get the initial prompt")
	}
}

func TestAdvanceStopsAtTerminal(t *testing.T) {
	e := NewStageEngine(3, true)
	s := NewState("s")
	for i := 0; i < 10; i++ {
		e.Advance(s)
	}
	if s.Stage != StageProposal {
		t.Errorf("stage after 10 advances = %s, want proposal", s.Stage)
	}
}

func TestFallbackFor(t *testing.T) {
	e := NewStageEngine(3, true)

	if got := e.FallbackFor(StageExploring, "I'm thinking about a food delivery thing"); !strings.Contains(got, "logistics") {
		t.Errorf("keyword rule not applied, got %q", got)
	}

	got := e.FallbackFor(StageInitial, "I want to build an app for dog walkers")
	if !strings.Contains(got, "?") {
		t.Errorf("initial fallback should ask a question, got %q", got)
	}

	if got := e.FallbackFor(Stage("bogus"), "hello there"); got == "" {
		t.Error("unknown stage should still produce a fallback")
	}
}

func TestSuggestionsToggle(t *testing.T) {
	on := NewStageEngine(3, true)
	off := NewStageEngine(3, false)

	if len(on.SuggestionsFor(StageInitial)) == 0 {
		t.Error("expected suggestions for initial stage")
	}
	if off.SuggestionsFor(StageInitial) != nil {
		t.Error("suggestions should be nil when disabled")
	}
}

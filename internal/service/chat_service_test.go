package service

import (
	"testing"

	"idea-shaper-be/pkg/persona"
)

func TestTitleFromMessage(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"I want to build an app for dog walkers", "I want to build an"},
		{"Short idea", "Short idea"},
		{"   ", defaultConversationTitle},
	}
	for _, tt := range tests {
		if got := titleFromMessage(tt.message); got != tt.want {
			t.Errorf("titleFromMessage(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestResolvePersonas(t *testing.T) {
	if got := resolvePersonas(nil); len(got) != 3 {
		t.Errorf("default personas = %d, want the 3 key personas", len(got))
	}

	got := resolvePersonas([]string{persona.MarketResearcher, "bogus"})
	if len(got) != 1 || got[0].ID != persona.MarketResearcher {
		t.Errorf("resolvePersonas dropped wrong entries: %v", got)
	}

	if got := resolvePersonas([]string{"bogus", "also-bogus"}); len(got) != 3 {
		t.Errorf("all-invalid list should fall back to key personas, got %d", len(got))
	}
}

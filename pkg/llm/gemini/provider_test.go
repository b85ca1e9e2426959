package gemini

import (
	"testing"

	"google.golang.org/genai"

	"idea-shaper-be/pkg/llm"
)

func TestContentRole(t *testing.T) {
	tests := []struct {
		role string
		want genai.Role
	}{
		{llm.RoleUser, genai.RoleUser},
		{llm.RoleSystem, genai.RoleUser},
		{llm.RoleAssistant, genai.RoleModel},
		{"model", genai.RoleModel},
		{"", genai.RoleUser},
	}
	for _, tt := range tests {
		if got := contentRole(tt.role); got != tt.want {
			t.Errorf("contentRole(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

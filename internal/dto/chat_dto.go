package dto

import (
	"time"

	"idea-shaper-be/pkg/dialog"
)

type StartConversationRequest struct {
	Title      string `json:"title"`
	TemplateID string `json:"template_id"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

type PersonaMessageRequest struct {
	Message  string `json:"message" validate:"required,min=1"`
	Persona  string `json:"persona" validate:"required"`
	Provider string `json:"provider"`
}

type MultiPerspectiveRequest struct {
	Message  string   `json:"message" validate:"required,min=1"`
	Personas []string `json:"personas"`
}

type ChatResponse struct {
	SessionKey       string   `json:"session_key"`
	Response         string   `json:"response"`
	Stage            string   `json:"stage"`
	StageAdvanced    bool     `json:"stage_advanced"`
	InteractionCount int      `json:"interaction_count"`
	Suggestions      []string `json:"suggestions,omitempty"`
	Provider         string   `json:"provider,omitempty"`
	Persona          string   `json:"persona,omitempty"`
}

type PerspectiveResponse struct {
	PersonaID   string `json:"persona_id"`
	PersonaName string `json:"persona_name"`
	Provider    string `json:"provider"`
	Content     string `json:"content"`
}

type MultiPerspectiveResponse struct {
	SessionKey   string                `json:"session_key"`
	Stage        string                `json:"stage"`
	Perspectives []PerspectiveResponse `json:"perspectives"`
}

type MessageResponse struct {
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	Persona     string    `json:"persona,omitempty"`
	Provider    string    `json:"provider,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ConversationResponse struct {
	SessionKey       string            `json:"session_key"`
	Title            string            `json:"title"`
	Stage            string            `json:"stage"`
	InteractionCount int               `json:"interaction_count"`
	Idea             dialog.Idea       `json:"idea"`
	Messages         []MessageResponse `json:"messages,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

type ProposalResponse struct {
	SessionKey string    `json:"session_key"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Problem    string    `json:"problem"`
	Solution   string    `json:"solution"`
	Features   []string  `json:"features"`
	TechStack  []string  `json:"tech_stack"`
	NextSteps  []string  `json:"next_steps"`
	CreatedAt  time.Time `json:"created_at"`
}

type PersonaResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProvidersResponse struct {
	Providers []string `json:"providers"`
}

package gemini

import (
	"context"
	"fmt"

	"idea-shaper-be/pkg/llm"

	"google.golang.org/genai"
)

// GeminiProvider wraps the official genai client behind the generic
// Provider interface.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

var _ llm.Provider = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *GeminiProvider) Name() string { return "gemini" }

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts...)

	model := g.modelName
	if options.Model != "" {
		model = options.Model
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		contents = append(contents, genai.NewContentFromText(msg.Content, contentRole(msg.Role)))
	}

	temp := float32(options.Temperature)
	cfg := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if options.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(options.MaxTokens)
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

// contentRole maps generic chat roles onto the two turn roles Gemini
// understands. Assistant turns become model turns; system prompts
// travel as user turns.
func contentRole(role string) genai.Role {
	if role == llm.RoleAssistant || role == "model" {
		return genai.RoleModel
	}
	return genai.RoleUser
}

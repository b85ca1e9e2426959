package factory

import (
	"context"
	"fmt"

	"idea-shaper-be/pkg/llm"
	"idea-shaper-be/pkg/llm/gemini"
	"idea-shaper-be/pkg/llm/ollama"
	"idea-shaper-be/pkg/llm/openai"
)

// Credentials carries everything needed to construct providers. A zero
// value for a field means that provider is not configured.
type Credentials struct {
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OllamaBaseURL string
	OllamaModel   string
}

// NewProvider constructs a single provider by type.
func NewProvider(ctx context.Context, providerType string, creds Credentials) (llm.Provider, error) {
	switch providerType {
	case "gemini":
		return gemini.NewGeminiProvider(ctx, creds.GeminiAPIKey, creds.GeminiModel)
	case "openai":
		return openai.NewOpenAIProvider(creds.OpenAIAPIKey, creds.OpenAIModel), nil
	case "ollama":
		baseURL := creds.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, creds.OllamaModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}

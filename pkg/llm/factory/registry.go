package factory

import (
	"context"
	"log"

	"idea-shaper-be/pkg/llm"
)

// Registry holds the providers discovered at process start. The set is
// fixed for the lifetime of the run; discovery happens exactly once.
type Registry struct {
	providers []llm.Provider
	byName    map[string]llm.Provider
}

// discoveryOrder mirrors the preference order of the backend: gemini
// first, then openai, then a local ollama instance.
var discoveryOrder = []string{"gemini", "openai", "ollama"}

// NewRegistry builds providers for every configured credential set.
// Construction failures are logged and skipped; an empty registry is a
// valid (degraded) outcome that callers must handle.
func NewRegistry(ctx context.Context, creds Credentials) *Registry {
	r := &Registry{byName: make(map[string]llm.Provider)}

	for _, name := range discoveryOrder {
		if !configured(name, creds) {
			continue
		}
		p, err := NewProvider(ctx, name, creds)
		if err != nil {
			log.Printf("[WARN] Failed to initialize %s provider: %v", name, err)
			continue
		}
		r.register(p)
	}

	return r
}

// NewRegistryFromProviders wires pre-built providers, preserving order.
// Used by tests and by callers that construct adapters themselves.
func NewRegistryFromProviders(providers ...llm.Provider) *Registry {
	r := &Registry{byName: make(map[string]llm.Provider)}
	for _, p := range providers {
		r.register(p)
	}
	return r
}

func (r *Registry) register(p llm.Provider) {
	if _, dup := r.byName[p.Name()]; dup {
		return
	}
	r.providers = append(r.providers, p)
	r.byName[p.Name()] = p
}

func configured(name string, creds Credentials) bool {
	switch name {
	case "gemini":
		return creds.GeminiAPIKey != ""
	case "openai":
		return creds.OpenAIAPIKey != ""
	case "ollama":
		return creds.OllamaModel != ""
	}
	return false
}

// Available returns the ordered set of usable providers. May be empty.
func (r *Registry) Available() []llm.Provider {
	return r.providers
}

// Get looks up a provider by id.
func (r *Registry) Get(name string) (llm.Provider, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Pick returns the provider at i mod len, the round-robin policy used
// by multi-perspective dispatch. Returns nil when no provider exists.
func (r *Registry) Pick(i int) llm.Provider {
	if len(r.providers) == 0 {
		return nil
	}
	return r.providers[i%len(r.providers)]
}

// Names returns the ordered provider ids, for the public providers API.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.Name())
	}
	return names
}

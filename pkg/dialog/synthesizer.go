package dialog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"idea-shaper-be/internal/constant"
	"idea-shaper-be/pkg/llm/factory"
)

// Proposal is the structured artifact produced at the end of a
// refinement conversation.
type Proposal struct {
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Problem   string    `json:"problem"`
	Solution  string    `json:"solution"`
	Features  []string  `json:"features"`
	TechStack []string  `json:"tech_stack"`
	NextSteps []string  `json:"next_steps"`
	CreatedAt time.Time `json:"created_at"`
}

// Synthesizer turns a transcript into a Proposal. Like the responder,
// it never fails outward: any problem along the way yields the
// placeholder proposal.
type Synthesizer struct {
	registry *factory.Registry
	timeout  time.Duration
}

// NewSynthesizer wires a synthesizer. A non-positive timeout falls back
// to the default generation timeout.
func NewSynthesizer(registry *factory.Registry, timeout time.Duration) *Synthesizer {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &Synthesizer{registry: registry, timeout: timeout}
}

// Synthesize builds a proposal from the full transcript. No provider,
// a failed call, or an unparseable reply all degrade to the
// placeholder.
func (sy *Synthesizer) Synthesize(ctx context.Context, s *State) Proposal {
	provider := sy.registry.Pick(0)
	if provider == nil {
		return PlaceholderProposal()
	}

	prompt := fmt.Sprintf(constant.ProposalPromptTemplate, formatContext(s.Messages))

	callCtx, cancel := context.WithTimeout(ctx, sy.timeout)
	defer cancel()

	raw, err := provider.Generate(callCtx, prompt)
	if err != nil {
		log.Printf("[WARN] proposal generation via %s failed: %v", provider.Name(), err)
		return PlaceholderProposal()
	}

	proposal, err := parseProposal(raw)
	if err != nil {
		log.Printf("[WARN] proposal parse failed: %v", err)
		return PlaceholderProposal()
	}
	return proposal
}

// parseProposal extracts the JSON object from a model reply. Models
// wrap JSON in code fences or prose often enough that we slice from
// the first '{' to the last '}' before unmarshaling.
func parseProposal(raw string) (Proposal, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return Proposal{}, fmt.Errorf("no JSON object in reply")
	}

	var p Proposal
	if err := json.Unmarshal([]byte(raw[start:end+1]), &p); err != nil {
		return Proposal{}, fmt.Errorf("unmarshal proposal: %w", err)
	}
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Summary) == "" {
		return Proposal{}, fmt.Errorf("proposal missing title or summary")
	}
	p.CreatedAt = time.Now().UTC()
	return p, nil
}

// PlaceholderProposal is the scripted fallback used when synthesis
// cannot produce a real proposal.
func PlaceholderProposal() Proposal {
	return Proposal{
		Title:     "Project Idea",
		Summary:   "A refined project concept based on our discussion",
		Problem:   "Problem statement to be defined",
		Solution:  "Solution approach to be defined",
		Features:  []string{"Core feature 1", "Core feature 2", "Core feature 3"},
		TechStack: []string{"React", "Node.js", "Database"},
		NextSteps: []string{"Define requirements", "Create prototype", "Test with users"},
		CreatedAt: time.Now().UTC(),
	}
}

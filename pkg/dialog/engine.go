package dialog

import (
	"strings"

	"idea-shaper-be/internal/constant"
)

// DefaultCadence is how many user turns pass between stage advances.
const DefaultCadence = 3

// StageEngine owns stage progression and the scripted material (system
// prompts, fallbacks, suggestions) attached to each stage. It holds no
// per-conversation state and is safe for concurrent use.
type StageEngine struct {
	cadence            int
	suggestionsEnabled bool
}

// NewStageEngine builds an engine. A cadence below 1 falls back to the
// default.
func NewStageEngine(cadence int, suggestionsEnabled bool) *StageEngine {
	if cadence < 1 {
		cadence = DefaultCadence
	}
	return &StageEngine{cadence: cadence, suggestionsEnabled: suggestionsEnabled}
}

// Cadence returns the configured advancement period.
func (e *StageEngine) Cadence() int {
	return e.cadence
}

// SystemPromptFor returns the system prompt for a stage. Every stage
// has one; an unknown stage gets the initial prompt.
func (e *StageEngine) SystemPromptFor(stage Stage) string {
	if p, ok := constant.StagePrompts[string(stage)]; ok {
		return p
	}
	return constant.StagePrompts[constant.StageInitial]
}

// ShouldAdvance reports whether the conversation is due for a stage
// transition: a positive turn count that is an exact multiple of the
// cadence. Advancement is periodic and content-blind.
func (e *StageEngine) ShouldAdvance(s *State) bool {
	return s.InteractionCount > 0 && s.InteractionCount%e.cadence == 0
}

// Advance moves the conversation to the successor stage. At the
// terminal stage this is a no-op.
func (e *StageEngine) Advance(s *State) Stage {
	s.Stage = s.Stage.Next()
	return s.Stage
}

// FallbackFor produces the scripted reply used when generation fails or
// degenerates. Keyword rules are consulted first in order, then the
// stage-keyed table, then a final default.
func (e *StageEngine) FallbackFor(stage Stage, userMessage string) string {
	lowered := strings.ToLower(userMessage)
	for _, rule := range constant.FallbackRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				return rule.Reply
			}
		}
	}
	if reply, ok := constant.StageFallbacks[string(stage)]; ok {
		return reply
	}
	return constant.DefaultFallback
}

// SuggestionsFor returns the follow-up prompts for a stage, or nil when
// suggestions are disabled or the stage has none.
func (e *StageEngine) SuggestionsFor(stage Stage) []string {
	if !e.suggestionsEnabled {
		return nil
	}
	return constant.StageSuggestions[string(stage)]
}

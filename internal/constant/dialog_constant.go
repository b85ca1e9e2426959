package constant

// Stage ids shared between the dialog engine and persisted conversations.
const (
	StageInitial      = "initial"
	StageExploring    = "exploring"
	StageStructuring  = "structuring"
	StageAlternatives = "alternatives"
	StageRefinement   = "refinement"
	StageProposal     = "proposal"
)

// Message roles
const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
)

// StagePrompts are the per-stage system prompts. The mentor voice ("Big
// Brother") is deliberate: supportive but challenging.
var StagePrompts = map[string]string{
	StageInitial: `You are Big Brother, a wise and slightly direct mentor who helps people refine vague ideas into concrete projects. You're like an experienced older sibling - supportive but challenging.

Your goal is to understand their initial idea and start asking probing questions. Don't be overly formal. Be conversational but insightful.`,

	StageExploring: `Continue as Big Brother. Now dig deeper into their idea. Ask challenging questions about the problem they're solving, who would actually use this, and why it matters. Challenge weak assumptions but remain supportive.`,

	StageStructuring: `As Big Brother, help organize their thoughts into a clear structure. Start identifying: the core problem, target audience, proposed solution, potential impact, and constraints. Summarize what you've learned so far.`,

	StageAlternatives: `Now suggest 2-3 alternative approaches or pivots to their idea. Present pros and cons for each. Help them see different angles they might not have considered.`,

	StageRefinement: `Focus on refining their chosen direction. Help them think through implementation details, potential challenges, and next steps.`,

	StageProposal: `Prepare to create a structured project proposal based on everything discussed.`,
}

// StageFallbacks are the scripted replies used whenever generation is
// unavailable or degenerate. Every entry ends with a question to keep
// the conversation moving.
var StageFallbacks = map[string]string{
	StageInitial:      "Interesting idea! Let me understand this better - what specific problem are you trying to solve with this concept?",
	StageExploring:    "That's helpful context. Now, who exactly would benefit from this solution? Can you paint me a picture of your ideal user?",
	StageStructuring:  "Good insights so far. Let me organize what I'm hearing - you're addressing a problem for an audience with a solution. Is that accurate?",
	StageAlternatives: "Here are a few different angles to consider: 1) A simpler MVP approach, 2) Targeting a different user segment, 3) Focusing on one core feature first. Which resonates with you?",
	StageRefinement:   "Let's get practical. What would be the very first step you'd take to start building this? What's the minimum viable version?",
}

// DefaultFallback closes the rule list when nothing else matches.
const DefaultFallback = "Tell me more about your idea. What's the core problem you want to solve?"

// FallbackRule is one entry of the ordered keyword rule list consulted
// before the stage-keyed fallbacks. Intentionally simple scripted
// matching, not NLP.
type FallbackRule struct {
	Keywords []string
	Reply    string
}

var FallbackRules = []FallbackRule{
	{
		Keywords: []string{"hunger", "food", "meal"},
		Reply:    "Food-related ideas live or die on logistics. Who prepares it, who delivers it, and who pays for it?",
	},
	{
		Keywords: []string{"marketplace", "two-sided"},
		Reply:    "Marketplaces have a chicken-and-egg problem. Which side would you bring on board first, and how?",
	},
}

// StageSuggestions are the follow-up prompts offered per stage. Later
// product revisions disabled suggestions; the engine keeps this behind
// a config switch.
var StageSuggestions = map[string][]string{
	StageInitial: {
		"What problem does this solve?",
		"Who would use this?",
		"Why does this matter?",
	},
	StageExploring: {
		"What alternatives exist?",
		"What makes this unique?",
		"What's the biggest challenge?",
	},
	StageStructuring: {
		"What's the core value proposition?",
		"What are the constraints?",
		"How would you measure success?",
	},
	StageAlternatives: {
		"Consider a simpler approach",
		"Target a niche first",
		"Focus on one key feature",
	},
	StageRefinement: {
		"What's the MVP?",
		"What tech stack?",
		"What's the timeline?",
	},
}

// ProposalPromptTemplate wraps the transcript when asking a provider to
// produce a structured proposal. The response contract is JSON.
const ProposalPromptTemplate = `Based on this conversation, create a structured project proposal:

%s

Respond with ONLY a JSON object using exactly these keys:
{
  "title": "concise, descriptive title",
  "summary": "2-3 sentence summary",
  "problem": "what it solves",
  "solution": "how it works",
  "features": ["3-5 key features"],
  "tech_stack": ["appropriate technologies"],
  "next_steps": ["3-4 actionable items"]
}
No other text.`

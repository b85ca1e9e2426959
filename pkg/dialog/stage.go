package dialog

import "idea-shaper-be/internal/constant"

// Stage is the refinement phase a conversation is in. Progression is
// strictly forward; there is no transition back to an earlier stage.
type Stage string

const (
	StageInitial      Stage = constant.StageInitial
	StageExploring    Stage = constant.StageExploring
	StageStructuring  Stage = constant.StageStructuring
	StageAlternatives Stage = constant.StageAlternatives
	StageRefinement   Stage = constant.StageRefinement
	StageProposal     Stage = constant.StageProposal
)

// Next returns the successor stage. The terminal stage maps to itself,
// so advancing past the end is a no-op rather than an error.
func (s Stage) Next() Stage {
	switch s {
	case StageInitial:
		return StageExploring
	case StageExploring:
		return StageStructuring
	case StageStructuring:
		return StageAlternatives
	case StageAlternatives:
		return StageRefinement
	case StageRefinement:
		return StageProposal
	case StageProposal:
		return StageProposal
	default:
		return StageInitial
	}
}

// Terminal reports whether s is the last stage of the progression.
func (s Stage) Terminal() bool {
	return s == StageProposal
}

// Index returns the zero-based position of s in the progression. Used
// for completion reporting, never for computing transitions.
func (s Stage) Index() int {
	switch s {
	case StageExploring:
		return 1
	case StageStructuring:
		return 2
	case StageAlternatives:
		return 3
	case StageRefinement:
		return 4
	case StageProposal:
		return 5
	default:
		return 0
	}
}

// Count is the total number of stages.
const Count = 6

// ParseStage maps a stored stage string back to a Stage. Unrecognized
// values fold to the initial stage instead of failing, so a corrupt or
// legacy row degrades to a restarted conversation.
func ParseStage(raw string) Stage {
	switch Stage(raw) {
	case StageInitial, StageExploring, StageStructuring, StageAlternatives, StageRefinement, StageProposal:
		return Stage(raw)
	default:
		return StageInitial
	}
}

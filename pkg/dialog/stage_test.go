package dialog

import "testing"

func TestStageProgression(t *testing.T) {
	order := []Stage{StageInitial, StageExploring, StageStructuring, StageAlternatives, StageRefinement, StageProposal}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%s.Next() = %s, want %s", order[i], got, order[i+1])
		}
	}
}

func TestTerminalStageClamps(t *testing.T) {
	if got := StageProposal.Next(); got != StageProposal {
		t.Errorf("proposal.Next() = %s, want proposal", got)
	}
	if !StageProposal.Terminal() {
		t.Error("proposal should be terminal")
	}
	if StageInitial.Terminal() {
		t.Error("initial should not be terminal")
	}
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		raw  string
		want Stage
	}{
		{"initial", StageInitial},
		{"exploring", StageExploring},
		{"proposal", StageProposal},
		{"bogus", StageInitial},
		{"", StageInitial},
		{"EXPLORING", StageInitial},
	}
	for _, tt := range tests {
		if got := ParseStage(tt.raw); got != tt.want {
			t.Errorf("ParseStage(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestStageIndex(t *testing.T) {
	if StageInitial.Index() != 0 || StageProposal.Index() != Count-1 {
		t.Errorf("unexpected index bounds: %d, %d", StageInitial.Index(), StageProposal.Index())
	}
}

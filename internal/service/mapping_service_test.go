package service

import (
	"testing"

	"idea-shaper-be/internal/entity"
	"idea-shaper-be/pkg/dialog"
)

func TestBuildMindMap(t *testing.T) {
	conv := &entity.Conversation{
		SessionKey: "sess-map",
		Title:      "Dog walker matching",
		Idea: dialog.Idea{
			Problem:      "Owners can't find trusted walkers",
			Audience:     "Urban dog owners working full time",
			Solution:     "Vetted walker marketplace",
			Constraints:  []string{"Insurance requirements"},
			Alternatives: []string{"Neighborhood co-op model", "B2B with offices"},
		},
	}

	got := BuildMindMap(conv)

	// 1 idea + problem + audience + solution + 1 constraint + 2 alternatives
	if len(got.Nodes) != 7 {
		t.Fatalf("nodes = %d, want 7", len(got.Nodes))
	}
	// every non-center node has one edge from the center
	if len(got.Edges) != 6 {
		t.Fatalf("edges = %d, want 6", len(got.Edges))
	}
	for _, e := range got.Edges {
		if e.From != "idea" {
			t.Errorf("edge from %q, want idea", e.From)
		}
	}
	for _, n := range got.Nodes {
		if n.Color == "" {
			t.Errorf("node %q has no color", n.ID)
		}
	}
}

func TestBuildMindMapEmptyIdea(t *testing.T) {
	got := BuildMindMap(&entity.Conversation{SessionKey: "s", Title: "Untitled"})
	if len(got.Nodes) != 1 || len(got.Edges) != 0 {
		t.Errorf("empty idea should yield only the center node, got %d nodes %d edges", len(got.Nodes), len(got.Edges))
	}
}

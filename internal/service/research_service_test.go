package service

import (
	"context"
	"testing"

	"idea-shaper-be/internal/dto"
)

func TestExtractKeywords(t *testing.T) {
	s := NewResearchService()

	got := s.ExtractKeywords("I want to build a health tracking app for busy health professionals")
	if len(got) == 0 || len(got) > 5 {
		t.Fatalf("keywords = %v, want 1-5 entries", got)
	}
	if got[0] != "health" {
		t.Errorf("top keyword = %q, want health (appears twice)", got[0])
	}
	for _, kw := range got {
		if stopwords[kw] {
			t.Errorf("stopword %q leaked into keywords", kw)
		}
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	s := NewResearchService()
	if got := s.ExtractKeywords("I want to build an app"); len(got) != 0 {
		t.Errorf("all-stopword input should yield no keywords, got %v", got)
	}
}

func TestResearchClassifiesIndustry(t *testing.T) {
	s := NewResearchService()

	tests := []struct {
		idea string
		want string
	}{
		{"a telemedicine platform connecting patients with therapy providers", "healthcare"},
		{"real-time payment infrastructure for small banking customers", "fintech"},
		{"ai automation software for data teams", "technology"},
	}

	for _, tt := range tests {
		resp, err := s.Research(context.Background(), &dto.ResearchRequest{IdeaText: tt.idea})
		if err != nil {
			t.Fatalf("Research(%q) error: %v", tt.idea, err)
		}
		if resp.Industry == nil {
			t.Errorf("Research(%q) found no industry", tt.idea)
			continue
		}
		if resp.Industry.Industry != tt.want {
			t.Errorf("Research(%q) industry = %s, want %s", tt.idea, resp.Industry.Industry, tt.want)
		}
		if len(resp.Competitors) == 0 {
			t.Errorf("Research(%q) should include competitors", tt.idea)
		}
	}
}

func TestResearchAlwaysRecommends(t *testing.T) {
	s := NewResearchService()
	resp, err := s.Research(context.Background(), &dto.ResearchRequest{IdeaText: "garden tools"})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Recommendations) < 3 {
		t.Errorf("recommendations = %d, want at least 3", len(resp.Recommendations))
	}
}

package service

import (
	"context"
	"testing"
)

func TestListTemplates(t *testing.T) {
	s := NewTemplateService()
	got := s.ListTemplates(context.Background(), "")
	if len(got) != 5 {
		t.Fatalf("templates = %d, want 5", len(got))
	}
	for _, tpl := range got {
		if tpl.ID == "" || tpl.Name == "" || len(tpl.Prompts) == 0 {
			t.Errorf("template %q incomplete", tpl.ID)
		}
	}
}

func TestListTemplatesByCategory(t *testing.T) {
	s := NewTemplateService()

	software := s.ListTemplates(context.Background(), "software")
	if len(software) != 2 {
		t.Fatalf("software templates = %d, want 2", len(software))
	}
	for _, tpl := range software {
		if tpl.Category != "software" {
			t.Errorf("template %q category = %q, want software", tpl.ID, tpl.Category)
		}
	}

	if got := s.ListTemplates(context.Background(), "nonexistent"); len(got) != 0 {
		t.Errorf("unknown category returned %d templates, want 0", len(got))
	}
}

func TestGetTemplate(t *testing.T) {
	s := NewTemplateService()

	tpl, err := s.GetTemplate(context.Background(), "marketplace")
	if err != nil {
		t.Fatalf("GetTemplate(marketplace) error: %v", err)
	}
	if tpl.Category != "business" {
		t.Errorf("category = %q, want business", tpl.Category)
	}

	if _, err := s.GetTemplate(context.Background(), "nonexistent"); err == nil {
		t.Error("GetTemplate(nonexistent) should fail")
	}
}

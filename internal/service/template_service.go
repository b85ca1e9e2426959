package service

import (
	"context"
	"fmt"

	"idea-shaper-be/internal/dto"
)

type ITemplateService interface {
	ListTemplates(ctx context.Context, category string) []*dto.TemplateResponse
	GetTemplate(ctx context.Context, id string) (*dto.TemplateResponse, error)
}

// templateService serves the fixed starter-template catalog. Templates
// are code-defined; changing the catalog is a deploy, not a migration.
type templateService struct{}

func NewTemplateService() ITemplateService {
	return &templateService{}
}

var templates = []*dto.TemplateResponse{
	{
		ID:          "saas_product",
		Name:        "SaaS Product",
		Description: "Shape a subscription software idea from problem to pricing",
		Category:    "software",
		Prompts: []string{
			"What recurring pain does this solve?",
			"Who pays, and how much would they pay monthly?",
			"What is the smallest feature set someone would subscribe to?",
		},
	},
	{
		ID:          "mobile_app",
		Name:        "Mobile App",
		Description: "Refine a consumer mobile app concept",
		Category:    "software",
		Prompts: []string{
			"What moment in the user's day does this app own?",
			"Why a native app instead of a website?",
			"What brings users back on day 7?",
		},
	},
	{
		ID:          "marketplace",
		Name:        "Marketplace",
		Description: "Work through a two-sided marketplace idea",
		Category:    "business",
		Prompts: []string{
			"Which side is harder to acquire, supply or demand?",
			"What transaction do you take a cut of?",
			"How do you seed the first 100 listings?",
		},
	},
	{
		ID:          "social_impact",
		Name:        "Social Impact",
		Description: "Develop a nonprofit or community project",
		Category:    "impact",
		Prompts: []string{
			"Whose life improves, and how do you measure it?",
			"What sustains this beyond initial enthusiasm?",
			"Who are the local partners you need?",
		},
	},
	{
		ID:          "hardware_product",
		Name:        "Hardware Product",
		Description: "Plan a physical product from prototype to production",
		Category:    "hardware",
		Prompts: []string{
			"What does the first hand-built prototype prove?",
			"What is the target unit cost at 1,000 units?",
			"Which certification or safety requirements apply?",
		},
	},
}

func (s *templateService) ListTemplates(_ context.Context, category string) []*dto.TemplateResponse {
	out := make([]*dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *templateService) GetTemplate(_ context.Context, id string) (*dto.TemplateResponse, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("template not found: %s", id)
}

// findTemplate is the package-internal lookup used when starting a
// conversation from a template.
func findTemplate(id string) *dto.TemplateResponse {
	for _, t := range templates {
		if t.ID == id {
			return t
		}
	}
	return nil
}

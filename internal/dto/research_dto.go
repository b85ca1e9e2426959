package dto

type ResearchRequest struct {
	IdeaText string `json:"idea_text" validate:"required,min=3"`
}

type IndustryInsight struct {
	Industry   string   `json:"industry"`
	MarketSize string   `json:"market_size"`
	GrowthRate string   `json:"growth_rate"`
	Trends     []string `json:"trends"`
	Challenges []string `json:"challenges"`
}

type CompetitorInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Strength    string `json:"strength"`
	Weakness    string `json:"weakness"`
}

type ResearchResponse struct {
	Keywords        []string         `json:"keywords"`
	Industry        *IndustryInsight `json:"industry,omitempty"`
	Competitors     []CompetitorInfo `json:"competitors"`
	Recommendations []string         `json:"recommendations"`
}

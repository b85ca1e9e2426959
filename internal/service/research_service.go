package service

import (
	"context"
	"sort"
	"strings"

	"idea-shaper-be/internal/dto"
)

type IResearchService interface {
	Research(ctx context.Context, req *dto.ResearchRequest) (*dto.ResearchResponse, error)
	ExtractKeywords(text string) []string
}

// researchService serves scripted market context. The data is a curated
// snapshot, not a live feed; it exists to give the refinement
// conversation something concrete to push against.
type researchService struct{}

func NewResearchService() IResearchService {
	return &researchService{}
}

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"for": true, "with": true, "that": true, "this": true, "is": true,
	"are": true, "was": true, "will": true, "would": true, "i": true,
	"to": true, "of": true, "in": true, "on": true, "it": true, "my": true,
	"want": true, "build": true, "make": true, "create": true, "app": true,
	"idea": true,
}

var industryKeywords = map[string][]string{
	"technology": {"software", "ai", "tech", "platform", "automation", "digital", "data"},
	"healthcare": {"health", "medical", "patient", "fitness", "wellness", "therapy"},
	"fintech":    {"payment", "finance", "banking", "money", "invest", "crypto"},
}

var industryInsights = map[string]dto.IndustryInsight{
	"technology": {
		Industry:   "technology",
		MarketSize: "$5.2T globally",
		GrowthRate: "5.3% annually",
		Trends:     []string{"AI integration", "Low-code platforms", "Edge computing"},
		Challenges: []string{"Talent shortage", "Rapid obsolescence", "Security concerns"},
	},
	"healthcare": {
		Industry:   "healthcare",
		MarketSize: "$12T globally",
		GrowthRate: "7.9% annually",
		Trends:     []string{"Telemedicine", "Wearable monitoring", "Personalized care"},
		Challenges: []string{"Regulatory compliance", "Data privacy", "Integration with legacy systems"},
	},
	"fintech": {
		Industry:   "fintech",
		MarketSize: "$310B globally",
		GrowthRate: "20% annually",
		Trends:     []string{"Embedded finance", "Open banking", "Real-time payments"},
		Challenges: []string{"Licensing", "Fraud prevention", "Trust building"},
	},
}

var industryCompetitors = map[string][]dto.CompetitorInfo{
	"technology": {
		{Name: "Established SaaS players", Description: "Broad horizontal platforms", Strength: "Distribution and brand", Weakness: "Slow to serve niches"},
		{Name: "Open source alternatives", Description: "Community-driven tools", Strength: "Free and extensible", Weakness: "Support burden on users"},
	},
	"healthcare": {
		{Name: "Hospital system vendors", Description: "Enterprise health IT", Strength: "Compliance track record", Weakness: "Poor consumer UX"},
		{Name: "Consumer wellness apps", Description: "Direct-to-consumer health", Strength: "Engagement loops", Weakness: "Shallow clinical value"},
	},
	"fintech": {
		{Name: "Incumbent banks", Description: "Full-service institutions", Strength: "Trust and capital", Weakness: "Legacy technology"},
		{Name: "Neo-banks", Description: "Mobile-first challengers", Strength: "User experience", Weakness: "Thin margins"},
	},
}

func (s *researchService) Research(_ context.Context, req *dto.ResearchRequest) (*dto.ResearchResponse, error) {
	keywords := s.ExtractKeywords(req.IdeaText)
	industry := classifyIndustry(keywords)

	resp := &dto.ResearchResponse{
		Keywords:    keywords,
		Competitors: []dto.CompetitorInfo{},
	}

	if industry != "" {
		insight := industryInsights[industry]
		resp.Industry = &insight
		resp.Competitors = industryCompetitors[industry]
	}

	resp.Recommendations = buildRecommendations(industry, keywords)
	return resp, nil
}

// ExtractKeywords lowercases, strips stopwords, and returns the five
// most frequent remaining words in frequency order.
func (s *researchService) ExtractKeywords(text string) []string {
	freq := make(map[string]int)
	order := make(map[string]int)

	for i, raw := range strings.Fields(strings.ToLower(text)) {
		word := strings.Trim(raw, ".,!?;:()\"'")
		if len(word) < 3 || stopwords[word] {
			continue
		}
		if _, seen := freq[word]; !seen {
			order[word] = i
		}
		freq[word]++
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return order[words[i]] < order[words[j]]
	})

	if len(words) > 5 {
		words = words[:5]
	}
	return words
}

func classifyIndustry(keywords []string) string {
	best := ""
	bestScore := 0
	// Iterate a fixed order so ties resolve deterministically
	for _, industry := range []string{"technology", "healthcare", "fintech"} {
		score := 0
		for _, kw := range keywords {
			for _, marker := range industryKeywords[industry] {
				if strings.Contains(kw, marker) {
					score++
				}
			}
		}
		if score > bestScore {
			best = industry
			bestScore = score
		}
	}
	return best
}

func buildRecommendations(industry string, keywords []string) []string {
	recs := []string{
		"Validate the problem with at least 10 potential users before building",
		"Define one measurable success metric for the first 90 days",
	}
	switch industry {
	case "healthcare":
		recs = append(recs, "Map the regulatory requirements early; they shape the MVP")
	case "fintech":
		recs = append(recs, "Decide whether to partner with a licensed institution or pursue licensing")
	case "technology":
		recs = append(recs, "Identify the niche where incumbents underserve users")
	default:
		recs = append(recs, "Research which industry category fits this idea best")
	}
	if len(keywords) > 0 {
		recs = append(recs, "Search for existing products around: "+strings.Join(keywords, ", "))
	}
	return recs
}

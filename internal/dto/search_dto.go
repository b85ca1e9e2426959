package dto

type SearchResult struct {
	SessionKey string  `json:"session_key"`
	Title      string  `json:"title"`
	Snippet    string  `json:"snippet"`
	MatchType  string  `json:"match_type"` // "title" or "content"
	Relevance  float64 `json:"relevance"`
}

type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

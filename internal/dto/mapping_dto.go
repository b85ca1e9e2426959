package dto

type MindMapNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"` // idea, problem, audience, solution, alternative, constraint
	Color string `json:"color"`
}

type MindMapEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

type MindMapResponse struct {
	SessionKey string        `json:"session_key"`
	Nodes      []MindMapNode `json:"nodes"`
	Edges      []MindMapEdge `json:"edges"`
}

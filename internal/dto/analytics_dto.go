package dto

type ConversationStats struct {
	SessionKey        string  `json:"session_key"`
	Stage             string  `json:"stage"`
	CompletionPercent float64 `json:"completion_percent"`
	InteractionCount  int     `json:"interaction_count"`
	MessageCount      int64   `json:"message_count"`
}

type UsageStats struct {
	TotalConversations int64            `json:"total_conversations"`
	TotalProposals     int64            `json:"total_proposals"`
	ProviderCalls      map[string]int64 `json:"provider_calls"`
	PersonaCalls       map[string]int64 `json:"persona_calls"`
}

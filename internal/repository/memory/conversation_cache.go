package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"idea-shaper-be/pkg/dialog"
)

// ConversationCache keeps hot conversation state in memory so a turn
// does not pay a full transcript reload. The database stays the source
// of truth; the cache is refilled from storage on a miss and rewritten
// after every mutation.
type ConversationCache struct {
	cache *cache.Cache
}

func NewConversationCache() *ConversationCache {
	// Default expiration 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ConversationCache{
		cache: c,
	}
}

func (r *ConversationCache) Save(state *dialog.State) {
	r.cache.Set(state.SessionID, state, cache.DefaultExpiration)
}

func (r *ConversationCache) Get(sessionKey string) (*dialog.State, bool) {
	if x, found := r.cache.Get(sessionKey); found {
		return x.(*dialog.State), true
	}
	return nil, false
}

func (r *ConversationCache) Delete(sessionKey string) {
	r.cache.Delete(sessionKey)
}

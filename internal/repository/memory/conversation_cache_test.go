package memory

import (
	"testing"

	"idea-shaper-be/pkg/dialog"
)

func TestConversationCacheRoundTrip(t *testing.T) {
	c := NewConversationCache()

	state := dialog.NewState("sess-1")
	state.AppendUser("hello")
	c.Save(state)

	got, found := c.Get("sess-1")
	if !found {
		t.Fatal("expected cache hit")
	}
	if got.SessionID != "sess-1" || len(got.Messages) != 1 {
		t.Errorf("unexpected state: %q with %d messages", got.SessionID, len(got.Messages))
	}
}

func TestConversationCacheMiss(t *testing.T) {
	c := NewConversationCache()
	if _, found := c.Get("absent"); found {
		t.Error("expected cache miss")
	}
}

func TestConversationCacheDelete(t *testing.T) {
	c := NewConversationCache()
	c.Save(dialog.NewState("sess-2"))
	c.Delete("sess-2")
	if _, found := c.Get("sess-2"); found {
		t.Error("expected entry to be gone after delete")
	}
}

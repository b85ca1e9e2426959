package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"idea-shaper-be/internal/pkg/logger"
)

// ConversationUpdate is what clients receive when the conversation
// they watch changes (new message, stage advance, proposal ready).
type ConversationUpdate struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}

type Hub struct {
	// Registered clients map: session key -> list of clients (multi-tab)
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionKey] = append(h.clients[client.SessionKey], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_key": client.SessionKey})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionKey]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionKey] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionKey]) == 0 {
					delete(h.clients, client.SessionKey)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send delivers an update to every client watching a session, locally
// and via Redis on other instances.
func (h *Hub) Send(sessionKey string, update ConversationUpdate) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "conversation_update",
		"data": update,
	})

	h.mu.RLock()
	clients, localFound := h.clients[sessionKey]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client send buffer full, dropping", map[string]interface{}{"session_key": sessionKey})
				close(client.Send)
				h.unregister <- client
			}
		}
	}

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_session": sessionKey,
			"message":        data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "conversation_events", jsonPayload)
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to the shared channel and delivers only
	// to sessions it holds locally.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "conversation_events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetSession string          `json:"target_session"`
			Message       json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[payload.TargetSession]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					close(client.Send)
					h.unregister <- client
				}
			}
		}
	}
}

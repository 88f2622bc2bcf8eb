package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"idea-copilot-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisChannel = "workspace_ws_events"

// Hub fans workspace events out to connected clients. Connections are
// keyed by workspace, so one push reaches every member watching it.
type Hub struct {
	// WorkspaceID -> connected clients (any member, any device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
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
		clients:    make(map[uuid.UUID][]*Client),
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
			h.clients[client.WorkspaceID] = append(h.clients[client.WorkspaceID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{
				"workspace_id": client.WorkspaceID,
				"user_id":      client.UserID,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.WorkspaceID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.WorkspaceID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.WorkspaceID]) == 0 {
					delete(h.clients, client.WorkspaceID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast delivers an event to every client watching the workspace,
// locally and via Redis on other instances.
func (h *Hub) Broadcast(workspaceId uuid.UUID, eventType string, payload map[string]interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type":         eventType,
		"workspace_id": workspaceId,
		"data":         payload,
	})

	// With Redis every instance, this one included, receives the event
	// through the subscription. Without it, deliver directly.
	if h.rdb != nil {
		wire, _ := json.Marshal(map[string]interface{}{
			"target_workspace_id": workspaceId.String(),
			"message":             json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), redisChannel, wire)
		return
	}

	h.deliverLocal(workspaceId, data)
}

func (h *Hub) deliverLocal(workspaceId uuid.UUID, data []byte) {
	h.mu.RLock()
	clients := h.clients[workspaceId]
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{
				"workspace_id": workspaceId,
				"user_id":      client.UserID,
			})
			// Unregister closes Send once the client is removed.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetWorkspaceID string          `json:"target_workspace_id"`
			Message           json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		workspaceId, err := uuid.Parse(payload.TargetWorkspaceID)
		if err != nil {
			continue
		}

		h.deliverLocal(workspaceId, payload.Message)
	}
}

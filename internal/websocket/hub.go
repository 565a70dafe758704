// Package websocket pushes live dashboard events (addon toggles, low stock)
// to connected admin clients, bridging across instances over redis.
package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"speedpress-addons-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const bridgeChannel = "spwa:dashboard-events"

type Hub struct {
	// UserID -> connected clients (multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Cross-instance bridge; nil when redis is unavailable.
	rdb *redis.Client

	// Identifies this instance on the bridge so its own messages are not
	// delivered to local clients twice.
	instanceId string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToBridge()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
				}
			}
			h.mu.Unlock()
		}
	}
}

type bridgeEnvelope struct {
	Origin  string          `json:"origin"`
	Message json.RawMessage `json:"message"`
}

// Broadcast sends a dashboard event to every connected client on every
// instance. Implements service.Broadcaster.
func (h *Hub) Broadcast(eventType string, payload map[string]interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": payload,
	})
	if err != nil {
		return
	}

	h.sendToLocal(data)

	if h.rdb == nil {
		return
	}
	envelope, err := json.Marshal(bridgeEnvelope{Origin: h.instanceId, Message: data})
	if err != nil {
		return
	}
	if err := h.rdb.Publish(context.Background(), bridgeChannel, envelope).Err(); err != nil {
		h.logger.Warn("Hub", "Failed to publish dashboard event to bridge", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func (h *Hub) sendToLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client send buffer full, dropping message", map[string]interface{}{
					"user_id": client.UserID,
				})
			}
		}
	}
}

// subscribeToBridge relays events published by sibling instances to the
// clients connected here. Own messages come back on the channel too and are
// skipped; local clients already received them.
func (h *Hub) subscribeToBridge() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, bridgeChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var envelope bridgeEnvelope
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			continue
		}
		if envelope.Origin == h.instanceId {
			continue
		}
		h.sendToLocal(envelope.Message)
	}
}

package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"agora/internal/metrics"
)

// Hub fans room events out to the websocket clients watching each room.
// Each client is subscribed to exactly one room for its lifetime.
type Hub struct {
	clients map[uuid.UUID]*Client

	// Clients grouped by the room they watch.
	rooms map[uint]map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan Event

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		rooms:      make(map[uint]map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case evt := <-h.broadcast:
			h.sendToRoom(evt)

		case <-ticker.C:
			h.ping()
		}
	}
}

func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		close(client.Send)
		if client.Conn != nil {
			client.Conn.Close()
		}
	}
	h.clients = make(map[uuid.UUID]*Client)
	h.rooms = make(map[uint]map[uuid.UUID]*Client)
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.ctx.Done():
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

// Broadcast queues an event for every client watching the event's room.
func (h *Hub) Broadcast(evt Event) error {
	select {
	case h.broadcast <- evt:
		return nil
	case <-h.ctx.Done():
		return ErrHubClosed
	}
}

// ViewerCount returns the number of live connections watching a room.
func (h *Hub) ViewerCount(roomID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client
	if _, ok := h.rooms[client.RoomID]; !ok {
		h.rooms[client.RoomID] = make(map[uuid.UUID]*Client)
	}
	h.rooms[client.RoomID][client.ID] = client

	metrics.WsConnections.Inc()
	log.Debug().
		Str("client", client.ID.String()).
		Uint("room", client.RoomID).
		Uint("user", client.UserID).
		Msg("websocket client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	if room, ok := h.rooms[client.RoomID]; ok {
		delete(room, client.ID)
		if len(room) == 0 {
			delete(h.rooms, client.RoomID)
		}
	}

	delete(h.clients, client.ID)
	close(client.Send)

	metrics.WsConnections.Dec()
	log.Debug().
		Str("client", client.ID.String()).
		Uint("room", client.RoomID).
		Msg("websocket client unregistered")
}

func (h *Hub) sendToRoom(evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Error().Err(err).Msg("marshal room event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.rooms[evt.RoomID] {
		select {
		case client.Send <- data:
		default:
			log.Warn().Str("client", client.ID.String()).Msg("client event queue full")
		}
	}
}

func (h *Hub) ping() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	evt := Event{Type: EventPing, Timestamp: time.Now()}
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}

	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

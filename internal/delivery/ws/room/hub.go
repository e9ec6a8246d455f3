package ws_room

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/humanbelnik/kinomatch/core/internal/model"
)

// Hub tracks which connected clients sit in which room.
type Hub struct {
	mu sync.RWMutex

	// Keep track of sets of Clients within each room
	rooms map[model.RoomID]map[*Client]bool

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		rooms:  make(map[model.RoomID]map[*Client]bool),
		logger: logger,
	}
}

// Join moves the client into roomID, leaving its previous room if any.
func (h *Hub) Join(client *Client, roomID model.RoomID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(client)
	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
	client.roomID = roomID

	h.logger.Info("client joined room", "room", roomID, "user_id", client.userID)
}

// Leave detaches the client from its room and returns that room.
func (h *Hub) Leave(client *Client) model.RoomID {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.leaveLocked(client)
}

func (h *Hub) leaveLocked(client *Client) model.RoomID {
	roomID := client.roomID
	if roomID == model.EmptyRoomID {
		return roomID
	}

	if room, ok := h.rooms[roomID]; ok {
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, roomID)
		}
	}
	client.roomID = model.EmptyRoomID

	h.logger.Info("client left room", "room", roomID, "user_id", client.userID)
	return roomID
}

// RoomOf returns the room the client currently sits in.
func (h *Hub) RoomOf(client *Client) model.RoomID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return client.roomID
}

func (h *Hub) ClientsIn(roomID model.RoomID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

func (h *Hub) BroadcastToRoom(roomID model.RoomID, event Event) {
	event.RoomID = roomID
	messageBytes, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode event", "event", event.Event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[roomID] {
		if !client.enqueue(messageBytes) {
			h.logger.Warn("dropping event for slow client", "room", roomID, "user_id", client.userID)
		}
	}
}

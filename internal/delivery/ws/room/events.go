package ws_room

import (
	"encoding/json"

	"github.com/humanbelnik/kinomatch/core/internal/model"
)

// Client -> server events. Every one of them is acknowledged.
const (
	EventCreateRoom     = "create_room"
	EventJoinRoom       = "join_room"
	EventLeaveRoom      = "leave_room"
	EventStartSelecting = "start_selecting"
	EventAddAnime       = "add_anime"
	EventRemoveAnime    = "remove_anime"
	EventSetReady       = "set_ready"
	EventSwipe          = "swipe"
	EventGetRoom        = "get_room"
	EventGetPool        = "get_pool"
)

// Server -> client events.
const (
	EventAck           = "ack"
	EventException     = "exception"
	EventUserJoined    = "user_joined"
	EventUserLeft      = "user_left"
	EventUserReady     = "user_ready"
	EventAnimeAdded    = "anime_added"
	EventAnimeRemoved  = "anime_removed"
	EventStatusChanged = "status_changed"
	EventPoolReady     = "pool_ready"
	EventMatchFound    = "match_found"
	EventRoomCancelled = "room_cancelled"
)

// Request is what a client sends.
type Request struct {
	Event string          `json:"event"`
	AckID int64           `json:"ackId"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type AckError struct {
	Message string          `json:"message"`
	Code    model.ErrorCode `json:"code"`
}

// Ack answers exactly one Request.
type Ack struct {
	Event   string    `json:"event"`
	AckID   int64     `json:"ackId"`
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *AckError `json:"error,omitempty"`
}

// Event is pushed to every client of a room.
type Event struct {
	Event  string       `json:"event"`
	RoomID model.RoomID `json:"roomId,omitempty"`
	Data   any          `json:"data,omitempty"`
}

type joinRoomPayload struct {
	RoomID model.RoomID `json:"roomId"`
}

type mediaPayload struct {
	MediaID model.MediaID `json:"mediaId"`
}

type setReadyPayload struct {
	IsReady bool `json:"isReady"`
}

type swipePayload struct {
	MediaID model.MediaID     `json:"mediaId"`
	Action  model.SwipeAction `json:"action"`
}

type mediaView struct {
	ID         model.MediaID `json:"id"`
	Title      string        `json:"title,omitempty"`
	PosterPath string        `json:"posterPath,omitempty"`
}

func newMediaView(m model.Media) mediaView {
	return mediaView{ID: m.ID, Title: m.Title, PosterPath: m.PosterPath}
}

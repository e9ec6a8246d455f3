package ws_room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/humanbelnik/kinomatch/core/internal/model"
)

const requestTimeout = 5 * time.Second

var errNotInRoom = fmt.Errorf("join a room first: %w", model.ErrInvalidState)

type RoomLifecycle interface {
	CreateRoom(ctx context.Context, userID model.UserID) (model.RoomData, error)
	AddUserToRoom(ctx context.Context, roomID model.RoomID, userID model.UserID) (model.RoomData, error)
	RemoveUserFromRoom(ctx context.Context, roomID model.RoomID, userID model.UserID) error
	RoomData(ctx context.Context, roomID model.RoomID, userID model.UserID) (model.RoomData, error)
}

type Readiness interface {
	StartSelections(ctx context.Context, roomID model.RoomID, userID model.UserID) error
	SetUserReadiness(ctx context.Context, roomID model.RoomID, userID model.UserID, ready bool) (model.Status, error)
	Pool(ctx context.Context, roomID model.RoomID, userID model.UserID) ([]model.MediaID, error)
}

type Selection interface {
	AddMediaToDraft(ctx context.Context, userID model.UserID, roomID model.RoomID, mediaID model.MediaID) (bool, error)
	DeleteMediaFromDraft(ctx context.Context, userID model.UserID, roomID model.RoomID, mediaID model.MediaID) (bool, error)
}

type Swiper interface {
	ProcessSwipe(ctx context.Context, action model.SwipeAction, userID model.UserID, roomID model.RoomID, mediaID model.MediaID) (model.SwipeResult, error)
}

type DisconnectHandler interface {
	OnDisconnect(ctx context.Context, roomID model.RoomID, userID model.UserID) (bool, error)
	OnReconnect(roomID model.RoomID, userID model.UserID) bool
}

type MediaCatalog interface {
	LoadByID(ctx context.Context, id model.MediaID) (model.Media, error)
	LoadByIDs(ctx context.Context, ids []model.MediaID) ([]model.Media, error)
}

// Gateway turns client events into usecase calls and room broadcasts.
type Gateway struct {
	hub        *Hub
	rooms      RoomLifecycle
	readiness  Readiness
	selection  Selection
	swiper     Swiper
	disconnect DisconnectHandler
	catalog    MediaCatalog

	logger *slog.Logger
}

type GatewayOption func(*Gateway)

func WithLogger(logger *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		g.logger = logger
	}
}

func NewGateway(
	hub *Hub,
	rooms RoomLifecycle,
	readiness Readiness,
	selection Selection,
	swiper Swiper,
	disconnect DisconnectHandler,
	catalog MediaCatalog,
	opts ...GatewayOption,
) *Gateway {
	g := &Gateway{
		hub:        hub,
		rooms:      rooms,
		readiness:  readiness,
		selection:  selection,
		swiper:     swiper,
		disconnect: disconnect,
		catalog:    catalog,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Serve runs the client until its connection drops.
func (g *Gateway) Serve(client *Client) {
	go client.writeLoop()

	client.readLoop(func(req Request) {
		g.dispatch(client, req)
	})

	client.close()
	g.onDisconnect(client)
}

// NotifyCancelled tells the members of roomID that the room is gone.
// Used as the callback of delayed cancellations.
func (g *Gateway) NotifyCancelled(roomID model.RoomID, userID model.UserID) {
	g.hub.BroadcastToRoom(roomID, Event{
		Event: EventRoomCancelled,
		Data:  map[string]any{"userId": userID, "status": model.StatusCancelled},
	})
}

func (g *Gateway) onDisconnect(client *Client) {
	roomID := g.hub.Leave(client)
	if roomID == model.EmptyRoomID {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	cancelled, err := g.disconnect.OnDisconnect(ctx, roomID, client.userID)
	if err != nil {
		g.logger.Error("failed to handle disconnect",
			slog.String("room", roomID),
			slog.String("user_id", client.userID),
			slog.String("error", err.Error()))
		return
	}
	if cancelled {
		g.NotifyCancelled(roomID, client.userID)
	}
}

func (g *Gateway) dispatch(client *Client, req Request) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("panic while handling event",
				slog.String("event", req.Event),
				slog.String("user_id", client.userID),
				slog.Any("panic", r))
			client.sendJSON(Event{
				Event: EventException,
				Data:  map[string]string{"status": "error", "message": "Internal server error"},
			}, g.logger)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	data, err := g.handle(ctx, client, req)
	if err != nil {
		level := slog.LevelInfo
		if errors.Is(err, model.ErrInternal) {
			level = slog.LevelError
		}
		g.logger.Log(ctx, level, "event rejected",
			slog.String("event", req.Event),
			slog.String("user_id", client.userID),
			slog.String("error", err.Error()))

		client.sendJSON(Ack{
			Event: EventAck,
			AckID: req.AckID,
			Error: &AckError{Message: clientMessage(err), Code: model.CodeOf(err)},
		}, g.logger)
		return
	}

	client.sendJSON(Ack{
		Event:   EventAck,
		AckID:   req.AckID,
		Success: true,
		Data:    data,
	}, g.logger)
}

func clientMessage(err error) string {
	if model.CodeOf(err) == model.CodeInternal {
		return "internal error"
	}
	return err.Error()
}

func (g *Gateway) handle(ctx context.Context, client *Client, req Request) (any, error) {
	switch req.Event {
	case EventCreateRoom:
		return g.createRoom(ctx, client)
	case EventJoinRoom:
		var p joinRoomPayload
		if err := decode(req.Data, &p); err != nil {
			return nil, err
		}
		return g.joinRoom(ctx, client, p.RoomID)
	case EventLeaveRoom:
		return nil, g.leaveRoom(ctx, client)
	case EventGetRoom:
		roomID, err := g.currentRoom(client)
		if err != nil {
			return nil, err
		}
		return g.rooms.RoomData(ctx, roomID, client.userID)
	case EventStartSelecting:
		return nil, g.startSelecting(ctx, client)
	case EventAddAnime:
		var p mediaPayload
		if err := decode(req.Data, &p); err != nil {
			return nil, err
		}
		return g.addAnime(ctx, client, p.MediaID)
	case EventRemoveAnime:
		var p mediaPayload
		if err := decode(req.Data, &p); err != nil {
			return nil, err
		}
		return g.removeAnime(ctx, client, p.MediaID)
	case EventSetReady:
		var p setReadyPayload
		if err := decode(req.Data, &p); err != nil {
			return nil, err
		}
		return g.setReady(ctx, client, p.IsReady)
	case EventGetPool:
		roomID, err := g.currentRoom(client)
		if err != nil {
			return nil, err
		}
		return g.readiness.Pool(ctx, roomID, client.userID)
	case EventSwipe:
		var p swipePayload
		if err := decode(req.Data, &p); err != nil {
			return nil, err
		}
		return g.swipe(ctx, client, p)
	}
	return nil, fmt.Errorf("%w: unknown event %q", model.ErrInvalidInput, req.Event)
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing payload", model.ErrInvalidInput)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}

func (g *Gateway) currentRoom(client *Client) (model.RoomID, error) {
	roomID := g.hub.RoomOf(client)
	if roomID == model.EmptyRoomID {
		return "", errNotInRoom
	}
	return roomID, nil
}

// ensureSeatable refuses to move a client out of a room it has not left.
func (g *Gateway) ensureSeatable(client *Client, roomID model.RoomID) error {
	current := g.hub.RoomOf(client)
	if current == model.EmptyRoomID || current == roomID {
		return nil
	}
	return fmt.Errorf("leave room %s first: %w", current, model.ErrInvalidState)
}

func (g *Gateway) createRoom(ctx context.Context, client *Client) (model.RoomData, error) {
	if err := g.ensureSeatable(client, model.EmptyRoomID); err != nil {
		return model.RoomData{}, err
	}
	data, err := g.rooms.CreateRoom(ctx, client.userID)
	if err != nil {
		return model.RoomData{}, err
	}
	g.hub.Join(client, data.RoomID)
	return data, nil
}

func (g *Gateway) joinRoom(ctx context.Context, client *Client, roomID model.RoomID) (model.RoomData, error) {
	if roomID == "" {
		return model.RoomData{}, fmt.Errorf("%w: empty room id", model.ErrInvalidInput)
	}
	if err := g.ensureSeatable(client, roomID); err != nil {
		return model.RoomData{}, err
	}

	data, err := g.rooms.AddUserToRoom(ctx, roomID, client.userID)
	if err != nil {
		return model.RoomData{}, err
	}
	g.hub.Join(client, roomID)
	g.disconnect.OnReconnect(roomID, client.userID)

	g.hub.BroadcastToRoom(roomID, Event{
		Event: EventUserJoined,
		Data: map[string]any{
			"userId":   client.userID,
			"nickname": data.Nickname,
			"users":    data.Members,
		},
	})
	return data, nil
}

func (g *Gateway) leaveRoom(ctx context.Context, client *Client) error {
	roomID, err := g.currentRoom(client)
	if err != nil {
		return err
	}
	if err := g.rooms.RemoveUserFromRoom(ctx, roomID, client.userID); err != nil {
		return err
	}
	g.hub.Leave(client)

	g.hub.BroadcastToRoom(roomID, Event{
		Event: EventUserLeft,
		Data:  map[string]any{"userId": client.userID},
	})
	return nil
}

func (g *Gateway) startSelecting(ctx context.Context, client *Client) error {
	roomID, err := g.currentRoom(client)
	if err != nil {
		return err
	}
	if err := g.readiness.StartSelections(ctx, roomID, client.userID); err != nil {
		return err
	}

	g.hub.BroadcastToRoom(roomID, Event{
		Event: EventStatusChanged,
		Data:  map[string]any{"status": model.StatusSelecting},
	})
	return nil
}

func (g *Gateway) addAnime(ctx context.Context, client *Client, mediaID model.MediaID) (map[string]bool, error) {
	roomID, err := g.currentRoom(client)
	if err != nil {
		return nil, err
	}
	added, err := g.selection.AddMediaToDraft(ctx, client.userID, roomID, mediaID)
	if err != nil {
		return nil, err
	}

	if added {
		g.hub.BroadcastToRoom(roomID, Event{
			Event: EventAnimeAdded,
			Data:  map[string]any{"userId": client.userID, "media": g.describe(ctx, mediaID)},
		})
	}
	return map[string]bool{"added": added}, nil
}

func (g *Gateway) removeAnime(ctx context.Context, client *Client, mediaID model.MediaID) (map[string]bool, error) {
	roomID, err := g.currentRoom(client)
	if err != nil {
		return nil, err
	}
	removed, err := g.selection.DeleteMediaFromDraft(ctx, client.userID, roomID, mediaID)
	if err != nil {
		return nil, err
	}

	if removed {
		g.hub.BroadcastToRoom(roomID, Event{
			Event: EventAnimeRemoved,
			Data:  map[string]any{"userId": client.userID, "mediaId": mediaID},
		})
	}
	return map[string]bool{"removed": removed}, nil
}

func (g *Gateway) setReady(ctx context.Context, client *Client, ready bool) (map[string]model.Status, error) {
	roomID, err := g.currentRoom(client)
	if err != nil {
		return nil, err
	}
	status, err := g.readiness.SetUserReadiness(ctx, roomID, client.userID, ready)
	if err != nil {
		return nil, err
	}

	g.hub.BroadcastToRoom(roomID, Event{
		Event: EventUserReady,
		Data:  map[string]any{"userId": client.userID, "isReady": ready},
	})

	if status == model.StatusSwiping {
		g.announcePool(ctx, roomID, client.userID)
	}
	return map[string]model.Status{"status": status}, nil
}

func (g *Gateway) announcePool(ctx context.Context, roomID model.RoomID, userID model.UserID) {
	ids, err := g.readiness.Pool(ctx, roomID, userID)
	if err != nil {
		g.logger.Error("failed to read media pool", slog.String("room", roomID), slog.String("error", err.Error()))
		return
	}

	pool := make([]mediaView, 0, len(ids))
	media, err := g.catalog.LoadByIDs(ctx, ids)
	if err != nil {
		g.logger.Warn("failed to describe media pool", slog.String("room", roomID), slog.String("error", err.Error()))
		for _, id := range ids {
			pool = append(pool, mediaView{ID: id})
		}
	} else {
		byID := make(map[model.MediaID]model.Media, len(media))
		for _, m := range media {
			byID[m.ID] = m
		}
		for _, id := range ids {
			view := mediaView{ID: id}
			if m, ok := byID[id]; ok {
				view = newMediaView(m)
			}
			pool = append(pool, view)
		}
	}

	g.hub.BroadcastToRoom(roomID, Event{
		Event: EventStatusChanged,
		Data:  map[string]any{"status": model.StatusSwiping},
	})
	g.hub.BroadcastToRoom(roomID, Event{
		Event: EventPoolReady,
		Data:  map[string]any{"pool": pool},
	})
}

func (g *Gateway) swipe(ctx context.Context, client *Client, p swipePayload) (model.SwipeResult, error) {
	roomID, err := g.currentRoom(client)
	if err != nil {
		return model.SwipeResult{}, err
	}
	result, err := g.swiper.ProcessSwipe(ctx, p.Action, client.userID, roomID, p.MediaID)
	if err != nil {
		return model.SwipeResult{}, err
	}

	if result.IsMatch {
		g.hub.BroadcastToRoom(roomID, Event{
			Event: EventMatchFound,
			Data:  result.MatchData,
		})
	}
	return result, nil
}

// describe is best effort: broadcasts still go out with the bare id.
func (g *Gateway) describe(ctx context.Context, mediaID model.MediaID) mediaView {
	m, err := g.catalog.LoadByID(ctx, mediaID)
	if err != nil {
		g.logger.Debug("media not described", slog.String("media_id", mediaID), slog.String("error", err.Error()))
		return mediaView{ID: mediaID}
	}
	return newMediaView(m)
}

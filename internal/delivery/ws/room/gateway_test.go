package ws_room

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	http_init "github.com/humanbelnik/kinomatch/core/internal/delivery/http/init"
	http_identity_middleware "github.com/humanbelnik/kinomatch/core/internal/delivery/http/middleware/identity"
	infra_redis_state "github.com/humanbelnik/kinomatch/core/internal/infra/redis/state"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	usecase_disconnect "github.com/humanbelnik/kinomatch/core/internal/usecase/disconnect"
	usecase_readiness "github.com/humanbelnik/kinomatch/core/internal/usecase/readiness"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
	usecase_selection "github.com/humanbelnik/kinomatch/core/internal/usecase/selection"
	usecase_swipe "github.com/humanbelnik/kinomatch/core/internal/usecase/swipe"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type GatewaySuite struct {
	suite.Suite
}

const awaitTimeout = 2 * time.Second

type catalog struct{}

func (catalog) LoadByID(_ context.Context, id model.MediaID) (model.Media, error) {
	return model.Media{ID: id, Title: "Title " + id}, nil
}

func (catalog) LoadByIDs(_ context.Context, ids []model.MediaID) ([]model.Media, error) {
	media := make([]model.Media, 0, len(ids))
	for _, id := range ids {
		media = append(media, model.Media{ID: id, Title: "Title " + id})
	}
	return media, nil
}

type matches struct {
	mu    sync.Mutex
	saved []model.MediaID
}

func (m *matches) SaveMatch(_ context.Context, _ model.RoomID, mediaID model.MediaID, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, mediaID)
	return nil
}

type message struct {
	Event   string          `json:"event"`
	AckID   int64           `json:"ackId"`
	Success bool            `json:"success"`
	RoomID  string          `json:"roomId"`
	Data    json.RawMessage `json:"data"`
	Error   *AckError       `json:"error"`
}

// peer is one websocket participant. Messages that did not match an
// expectation stay queued for later ones.
type peer struct {
	t       provider.T
	conn    *websocket.Conn
	inbox   chan message
	pending []message
	nextAck int64
}

func startServer(t provider.T) string {
	server, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	state := infra_redis_state.New(client, time.Hour)
	rooms := usecase_room.New(state, nil)
	readiness := usecase_readiness.New(state, nil)
	selection := usecase_selection.New(state, usecase_selection.DefaultDraftLimit)
	swipes := usecase_swipe.New(readiness, state, catalog{}, &matches{})

	var gateway *Gateway
	disconnect := usecase_disconnect.New(readiness,
		usecase_disconnect.WithCancelledHook(func(roomID model.RoomID, userID model.UserID) {
			gateway.NotifyCancelled(roomID, userID)
		}),
	)
	gateway = NewGateway(NewHub(nil), rooms, readiness, selection, swipes, disconnect, catalog{})

	pool := http_init.NewControllerPool()
	pool.Add(NewController(gateway, http_identity_middleware.New().Identify()))
	pool.Register()
	srv := httptest.NewServer(pool.Engine())

	t.Cleanup(func() {
		srv.Close()
		client.Close()
		server.Close()
	})
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"
}

func dial(t provider.T, url string) *peer {
	header := http.Header{}
	header.Set("Cookie", http_identity_middleware.CookieName+"="+uuid.NewString())
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)

	p := &peer{t: t, conn: conn, inbox: make(chan message, 64)}
	go func() {
		defer close(p.inbox)
		for {
			var m message
			if err := conn.ReadJSON(&m); err != nil {
				return
			}
			p.inbox <- m
		}
	}()
	t.Cleanup(func() { conn.Close() })
	return p
}

// request sends an event and returns its acknowledgement.
func (p *peer) request(event string, data any) message {
	p.nextAck++
	req := map[string]any{"event": event, "ackId": p.nextAck}
	if data != nil {
		req["data"] = data
	}
	require.NoError(p.t, p.conn.WriteJSON(req))

	ackID := p.nextAck
	return p.await(func(m message) bool { return m.Event == EventAck && m.AckID == ackID })
}

func (p *peer) awaitEvent(event string) message {
	return p.await(func(m message) bool { return m.Event == event })
}

func (p *peer) await(match func(message) bool) message {
	for i, m := range p.pending {
		if match(m) {
			p.pending = append(p.pending[:i], p.pending[i+1:]...)
			return m
		}
	}

	timeout := time.After(awaitTimeout)
	for {
		select {
		case m, ok := <-p.inbox:
			if !ok {
				p.t.Fatalf("connection closed while waiting")
			}
			if match(m) {
				return m
			}
			p.pending = append(p.pending, m)
		case <-timeout:
			p.t.Fatalf("no matching message within %s", awaitTimeout)
			return message{}
		}
	}
}

func decodeData[T any](t provider.T, m message) T {
	var v T
	require.NoError(t, json.Unmarshal(m.Data, &v))
	return v
}

func (s *GatewaySuite) TestSessionToMatch(t provider.T) {
	t.Parallel()
	url := startServer(t)
	host, guest := dial(t, url), dial(t, url)

	ack := host.request(EventCreateRoom, nil)
	require.True(t, ack.Success)
	created := decodeData[model.RoomData](t, ack)
	assert.True(t, created.IsHost)
	assert.Len(t, created.RoomID, 6)

	ack = guest.request(EventJoinRoom, map[string]string{"roomId": created.RoomID})
	require.True(t, ack.Success)
	joined := host.awaitEvent(EventUserJoined)
	assert.Equal(t, created.RoomID, joined.RoomID)

	require.True(t, host.request(EventStartSelecting, nil).Success)
	for _, p := range []*peer{host, guest} {
		changed := p.awaitEvent(EventStatusChanged)
		assert.Equal(t, model.StatusSelecting, decodeData[map[string]model.Status](t, changed)["status"])
	}

	ack = host.request(EventAddAnime, map[string]string{"mediaId": "42"})
	require.True(t, ack.Success)
	assert.Equal(t, map[string]bool{"added": true}, decodeData[map[string]bool](t, ack))
	added := guest.awaitEvent(EventAnimeAdded)
	assert.Contains(t, string(added.Data), "Title 42")

	require.True(t, host.request(EventSetReady, map[string]bool{"isReady": true}).Success)
	ack = guest.request(EventSetReady, map[string]bool{"isReady": true})
	require.True(t, ack.Success)
	assert.Equal(t, model.StatusSwiping, decodeData[map[string]model.Status](t, ack)["status"])

	for _, p := range []*peer{host, guest} {
		pool := decodeData[struct {
			Pool []mediaView `json:"pool"`
		}](t, p.awaitEvent(EventPoolReady))
		assert.Equal(t, []mediaView{{ID: "42", Title: "Title 42"}}, pool.Pool)
	}

	ack = host.request(EventSwipe, map[string]string{"mediaId": "42", "action": "LIKE"})
	require.True(t, ack.Success)
	assert.False(t, decodeData[model.SwipeResult](t, ack).IsMatch)

	ack = guest.request(EventSwipe, map[string]string{"mediaId": "42", "action": "LIKE"})
	require.True(t, ack.Success)
	assert.True(t, decodeData[model.SwipeResult](t, ack).IsMatch)

	for _, p := range []*peer{host, guest} {
		found := decodeData[model.MatchData](t, p.awaitEvent(EventMatchFound))
		assert.Equal(t, "42", found.MediaID)
		assert.Equal(t, "Title 42", found.MediaTitle)
	}

	ack = host.request(EventSwipe, map[string]string{"mediaId": "42", "action": "SKIP"})
	assert.False(t, ack.Success)
	require.NotNil(t, ack.Error)
	assert.Equal(t, model.CodeInvalidState, ack.Error.Code)
}

func (s *GatewaySuite) TestRejectedEvents(t provider.T) {
	t.Parallel()
	url := startServer(t)
	p := dial(t, url)

	testCases := []struct {
		name         string
		event        string
		data         any
		expectedCode model.ErrorCode
	}{
		{name: "Should reject unknown event", event: "dance", expectedCode: model.CodeInvalidInput},
		{name: "Should reject missing payload", event: EventJoinRoom, expectedCode: model.CodeInvalidInput},
		{name: "Should reject malformed payload", event: EventSetReady, data: map[string]string{"isReady": "yes"}, expectedCode: model.CodeInvalidInput},
		{name: "Should require a room first", event: EventStartSelecting, expectedCode: model.CodeInvalidState},
		{name: "Should report unknown room", event: EventJoinRoom, data: map[string]string{"roomId": "NOPE22"}, expectedCode: model.CodeNotFound},
	}

	// Requests share one connection, so they run in order.
	for _, tc := range testCases {
		ack := p.request(tc.event, tc.data)
		assert.False(t, ack.Success, tc.name)
		if assert.NotNil(t, ack.Error, tc.name) {
			assert.Equal(t, tc.expectedCode, ack.Error.Code, tc.name)
		}
	}
}

func (s *GatewaySuite) TestDisconnectCancelsRoom(t provider.T) {
	t.Parallel()
	url := startServer(t)
	host, guest := dial(t, url), dial(t, url)

	created := decodeData[model.RoomData](t, host.request(EventCreateRoom, nil))
	require.True(t, guest.request(EventJoinRoom, map[string]string{"roomId": created.RoomID}).Success)
	require.True(t, host.request(EventStartSelecting, nil).Success)

	require.NoError(t, guest.conn.Close())

	cancelled := host.awaitEvent(EventRoomCancelled)
	assert.Equal(t, created.RoomID, cancelled.RoomID)

	ack := host.request(EventAddAnime, map[string]string{"mediaId": "1"})
	require.NotNil(t, ack.Error)
	assert.Equal(t, model.CodeInvalidState, ack.Error.Code)
}

func (s *GatewaySuite) TestLeaveBeforeStart(t provider.T) {
	t.Parallel()
	url := startServer(t)
	host, guest := dial(t, url), dial(t, url)

	created := decodeData[model.RoomData](t, host.request(EventCreateRoom, nil))
	require.True(t, guest.request(EventJoinRoom, map[string]string{"roomId": created.RoomID}).Success)

	require.True(t, host.request(EventLeaveRoom, nil).Success)
	guest.awaitEvent(EventUserLeft)

	data := decodeData[model.RoomData](t, guest.request(EventGetRoom, nil))
	assert.True(t, data.IsHost)
	assert.Len(t, data.Members, 1)
}

func (s *GatewaySuite) TestSeatedClientCannotSwitchRooms(t provider.T) {
	t.Parallel()
	url := startServer(t)
	host, guest, other := dial(t, url), dial(t, url), dial(t, url)

	created := decodeData[model.RoomData](t, host.request(EventCreateRoom, nil))
	require.True(t, guest.request(EventJoinRoom, map[string]string{"roomId": created.RoomID}).Success)
	require.True(t, host.request(EventStartSelecting, nil).Success)
	elsewhere := decodeData[model.RoomData](t, other.request(EventCreateRoom, nil))

	ack := guest.request(EventCreateRoom, nil)
	assert.False(t, ack.Success)
	require.NotNil(t, ack.Error)
	assert.Equal(t, model.CodeInvalidState, ack.Error.Code)

	ack = guest.request(EventJoinRoom, map[string]string{"roomId": elsewhere.RoomID})
	assert.False(t, ack.Success)
	require.NotNil(t, ack.Error)
	assert.Equal(t, model.CodeInvalidState, ack.Error.Code)

	ack = guest.request(EventJoinRoom, map[string]string{"roomId": created.RoomID})
	assert.True(t, ack.Success)

	require.NoError(t, guest.conn.Close())
	cancelled := host.awaitEvent(EventRoomCancelled)
	assert.Equal(t, created.RoomID, cancelled.RoomID)
}

func TestGatewaySuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(GatewaySuite))
}

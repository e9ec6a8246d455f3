package integrationtest

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis"
	infra_redis_state "github.com/humanbelnik/kinomatch/core/internal/infra/redis/state"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	usecase_disconnect "github.com/humanbelnik/kinomatch/core/internal/usecase/disconnect"
	usecase_readiness "github.com/humanbelnik/kinomatch/core/internal/usecase/readiness"
	readiness_archive_mocks "github.com/humanbelnik/kinomatch/core/internal/usecase/readiness/mocks/readiness/archive"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
	room_archive_mocks "github.com/humanbelnik/kinomatch/core/internal/usecase/room/mocks/room/archive"
	usecase_selection "github.com/humanbelnik/kinomatch/core/internal/usecase/selection"
	usecase_swipe "github.com/humanbelnik/kinomatch/core/internal/usecase/swipe"
	catalog_mocks "github.com/humanbelnik/kinomatch/core/internal/usecase/swipe/mocks/swipe/catalog"
	matches_mocks "github.com/humanbelnik/kinomatch/core/internal/usecase/swipe/mocks/swipe/matches"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const roomTTL = 60 * time.Minute

// env wires every usecase onto one in-memory Redis. Durable stores are mocks
// that accept everything.
type env struct {
	ctx    context.Context
	server *miniredis.Miniredis
	state  *infra_redis_state.Driver

	rooms      *usecase_room.Usecase
	readiness  *usecase_readiness.Usecase
	selection  *usecase_selection.Usecase
	swipes     *usecase_swipe.Usecase
	disconnect *usecase_disconnect.Handler

	savedMatches atomic.Int32
}

func newEnv(t provider.T) *env {
	server, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), PoolSize: 32})
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})

	e := &env{
		ctx:    context.Background(),
		server: server,
		state:  infra_redis_state.New(client, roomTTL),
	}

	roomArchive := room_archive_mocks.NewRoomArchive(t)
	roomArchive.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	statusArchive := readiness_archive_mocks.NewStatusArchive(t)
	statusArchive.On("SetStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	catalog := catalog_mocks.NewMediaCatalog(t)
	catalog.On("LoadByID", mock.Anything, mock.Anything).
		Return(func(_ context.Context, id string) (model.Media, error) {
			return model.Media{ID: id, Title: "Title " + id, PosterPath: "/p/" + id + ".jpg"}, nil
		}).Maybe()
	matches := matches_mocks.NewMatchRepository(t)
	matches.On("SaveMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { e.savedMatches.Add(1) }).
		Return(nil).Maybe()

	e.rooms = usecase_room.New(e.state, roomArchive)
	e.readiness = usecase_readiness.New(e.state, statusArchive)
	e.selection = usecase_selection.New(e.state, usecase_selection.DefaultDraftLimit)
	e.swipes = usecase_swipe.New(e.readiness, e.state, catalog, matches)
	e.disconnect = usecase_disconnect.New(e.readiness)
	return e
}

// selectingRoom returns a full room in SELECTING.
func (e *env) selectingRoom(t provider.T, host, guest model.UserID) model.RoomID {
	data, err := e.rooms.CreateRoom(e.ctx, host)
	require.NoError(t, err)
	_, err = e.rooms.AddUserToRoom(e.ctx, data.RoomID, guest)
	require.NoError(t, err)
	require.NoError(t, e.readiness.StartSelections(e.ctx, data.RoomID, host))
	return data.RoomID
}

// swipingRoom returns a room in SWIPING whose pool holds media.
func (e *env) swipingRoom(t provider.T, host, guest model.UserID, media ...model.MediaID) model.RoomID {
	roomID := e.selectingRoom(t, host, guest)
	for _, id := range media {
		_, err := e.selection.AddMediaToDraft(e.ctx, host, roomID, id)
		require.NoError(t, err)
	}
	_, err := e.readiness.SetUserReadiness(e.ctx, roomID, host, true)
	require.NoError(t, err)
	status, err := e.readiness.SetUserReadiness(e.ctx, roomID, guest, true)
	require.NoError(t, err)
	require.Equal(t, model.StatusSwiping, status)
	return roomID
}

func (e *env) status(t provider.T, roomID model.RoomID) model.Status {
	room, err := e.state.LoadRoom(e.ctx, roomID)
	require.NoError(t, err)
	return room.Status
}

package integrationtest

import (
	"strconv"
	"testing"
	"time"

	"github.com/humanbelnik/kinomatch/core/internal/model"
	usecase_selection "github.com/humanbelnik/kinomatch/core/internal/usecase/selection"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type SessionIntegrationSuite struct {
	suite.Suite
}

const (
	alice = "11111111-1111-4111-8111-111111111111"
	bob   = "22222222-2222-4222-8222-222222222222"
	carol = "33333333-3333-4333-8333-333333333333"
)

func (s *SessionIntegrationSuite) TestHappyPathEndsInMatch(t provider.T) {
	t.Parallel()
	e := newEnv(t)

	created, err := e.rooms.CreateRoom(e.ctx, alice)
	require.NoError(t, err)
	assert.True(t, created.IsHost)
	assert.Equal(t, model.StatusWaiting, created.Status)
	roomID := created.RoomID

	joined, err := e.rooms.AddUserToRoom(e.ctx, roomID, bob)
	require.NoError(t, err)
	assert.False(t, joined.IsHost)
	assert.Len(t, joined.Members, 2)
	assert.NotEqual(t, joined.Members[0].Nickname, joined.Members[1].Nickname)

	require.NoError(t, e.readiness.StartSelections(e.ctx, roomID, alice))
	assert.Equal(t, model.StatusSelecting, e.status(t, roomID))

	for _, id := range []model.MediaID{"1", "2", "3"} {
		added, err := e.selection.AddMediaToDraft(e.ctx, alice, roomID, id)
		require.NoError(t, err)
		assert.True(t, added)
	}
	for _, id := range []model.MediaID{"3", "4"} {
		_, err := e.selection.AddMediaToDraft(e.ctx, bob, roomID, id)
		require.NoError(t, err)
	}

	status, err := e.readiness.SetUserReadiness(e.ctx, roomID, alice, true)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSelecting, status)

	status, err = e.readiness.SetUserReadiness(e.ctx, roomID, bob, true)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSwiping, status)

	pool, err := e.readiness.Pool(e.ctx, roomID, bob)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.MediaID{"1", "2", "3", "4"}, pool)

	result, err := e.swipes.ProcessSwipe(e.ctx, model.SwipeLike, alice, roomID, "2")
	require.NoError(t, err)
	assert.False(t, result.IsMatch)

	result, err = e.swipes.ProcessSwipe(e.ctx, model.SwipeSkip, bob, roomID, "2")
	require.NoError(t, err)
	assert.False(t, result.IsMatch)

	result, err = e.swipes.ProcessSwipe(e.ctx, model.SwipeLike, bob, roomID, "4")
	require.NoError(t, err)
	assert.False(t, result.IsMatch)

	result, err = e.swipes.ProcessSwipe(e.ctx, model.SwipeLike, alice, roomID, "4")
	require.NoError(t, err)
	require.True(t, result.IsMatch)
	assert.Equal(t, "4", result.MatchData.MediaID)
	assert.Equal(t, "Title 4", result.MatchData.MediaTitle)

	assert.Equal(t, model.StatusMatched, e.status(t, roomID))
	assert.EqualValues(t, 1, e.savedMatches.Load())

	_, err = e.swipes.ProcessSwipe(e.ctx, model.SwipeLike, bob, roomID, "1")
	assert.ErrorIs(t, err, model.ErrInvalidState)
}

func (s *SessionIntegrationSuite) TestDisconnectCancelsLiveRoom(t provider.T) {
	t.Parallel()
	e := newEnv(t)
	roomID := e.selectingRoom(t, alice, bob)

	cancelled, err := e.disconnect.OnDisconnect(e.ctx, roomID, bob)
	require.NoError(t, err)
	assert.True(t, cancelled)
	assert.Equal(t, model.StatusCancelled, e.status(t, roomID))

	_, err = e.selection.AddMediaToDraft(e.ctx, alice, roomID, "1")
	assert.ErrorIs(t, err, model.ErrInvalidState)
	_, err = e.readiness.SetUserReadiness(e.ctx, roomID, alice, true)
	assert.ErrorIs(t, err, model.ErrInvalidState)

	cancelled, err = e.disconnect.OnDisconnect(e.ctx, roomID, alice)
	require.NoError(t, err)
	assert.False(t, cancelled)
}

func (s *SessionIntegrationSuite) TestDisconnectAfterMatchKeepsMatch(t provider.T) {
	t.Parallel()
	e := newEnv(t)
	roomID := e.swipingRoom(t, alice, bob, "7")

	_, err := e.swipes.ProcessSwipe(e.ctx, model.SwipeLike, alice, roomID, "7")
	require.NoError(t, err)
	result, err := e.swipes.ProcessSwipe(e.ctx, model.SwipeLike, bob, roomID, "7")
	require.NoError(t, err)
	require.True(t, result.IsMatch)

	cancelled, err := e.disconnect.OnDisconnect(e.ctx, roomID, alice)
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.Equal(t, model.StatusMatched, e.status(t, roomID))
}

func (s *SessionIntegrationSuite) TestMembershipRules(t provider.T) {
	t.Parallel()

	t.Run("Should refuse a third member", func(t provider.T) {
		t.Parallel()
		e := newEnv(t)
		created, err := e.rooms.CreateRoom(e.ctx, alice)
		require.NoError(t, err)
		_, err = e.rooms.AddUserToRoom(e.ctx, created.RoomID, bob)
		require.NoError(t, err)

		_, err = e.rooms.AddUserToRoom(e.ctx, created.RoomID, carol)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("Should let members rejoin", func(t provider.T) {
		t.Parallel()
		e := newEnv(t)
		roomID := e.selectingRoom(t, alice, bob)

		data, err := e.rooms.AddUserToRoom(e.ctx, roomID, bob)
		require.NoError(t, err)
		assert.Equal(t, model.StatusSelecting, data.Status)
		assert.Len(t, data.Members, 2)
	})

	t.Run("Should refuse newcomers once selections started", func(t provider.T) {
		t.Parallel()
		e := newEnv(t)
		roomID := e.selectingRoom(t, alice, bob)
		require.NoError(t, e.rooms.RemoveUserFromRoom(e.ctx, roomID, bob))

		_, err := e.rooms.AddUserToRoom(e.ctx, roomID, carol)
		assert.ErrorIs(t, err, model.ErrInvalidState)
	})

	t.Run("Should refuse unknown room", func(t provider.T) {
		t.Parallel()
		e := newEnv(t)

		_, err := e.rooms.AddUserToRoom(e.ctx, "ZZZZZZ", alice)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("Should only let the host start", func(t provider.T) {
		t.Parallel()
		e := newEnv(t)
		created, err := e.rooms.CreateRoom(e.ctx, alice)
		require.NoError(t, err)

		assert.ErrorIs(t, e.readiness.StartSelections(e.ctx, created.RoomID, alice), model.ErrInvalidState)

		_, err = e.rooms.AddUserToRoom(e.ctx, created.RoomID, bob)
		require.NoError(t, err)
		assert.ErrorIs(t, e.readiness.StartSelections(e.ctx, created.RoomID, bob), model.ErrInvalidState)
		assert.NoError(t, e.readiness.StartSelections(e.ctx, created.RoomID, alice))
	})
}

func (s *SessionIntegrationSuite) TestLeavingEmptiesRoom(t provider.T) {
	t.Parallel()
	e := newEnv(t)
	created, err := e.rooms.CreateRoom(e.ctx, alice)
	require.NoError(t, err)
	roomID := created.RoomID
	_, err = e.rooms.AddUserToRoom(e.ctx, roomID, bob)
	require.NoError(t, err)

	require.NoError(t, e.rooms.RemoveUserFromRoom(e.ctx, roomID, alice))
	data, err := e.rooms.RoomData(e.ctx, roomID, bob)
	require.NoError(t, err)
	assert.True(t, data.IsHost)

	assert.ErrorIs(t, e.rooms.RemoveUserFromRoom(e.ctx, roomID, alice), model.ErrForbidden)

	require.NoError(t, e.rooms.RemoveUserFromRoom(e.ctx, roomID, bob))
	_, err = e.state.LoadRoom(e.ctx, roomID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Empty(t, e.server.Keys())
}

func (s *SessionIntegrationSuite) TestJoinAfterLastMemberLeft(t provider.T) {
	t.Parallel()
	e := newEnv(t)
	created, err := e.rooms.CreateRoom(e.ctx, alice)
	require.NoError(t, err)

	left, err := e.state.RemoveMember(e.ctx, created.RoomID, alice)
	require.NoError(t, err)
	require.Zero(t, left)

	_, err = e.rooms.AddUserToRoom(e.ctx, created.RoomID, bob)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Empty(t, e.server.Keys())
}

func (s *SessionIntegrationSuite) TestLeftMemberLeavesNoKeys(t provider.T) {
	t.Parallel()
	e := newEnv(t)
	roomID := e.selectingRoom(t, alice, bob)
	_, err := e.state.RemoveMember(e.ctx, roomID, bob)
	require.NoError(t, err)

	_, err = e.state.AddToDraft(e.ctx, roomID, bob, "x", usecase_selection.DefaultDraftLimit)
	assert.ErrorIs(t, err, model.ErrForbidden)
	_, err = e.state.RecordSwipe(e.ctx, roomID, bob, "x", model.SwipeLike)
	assert.ErrorIs(t, err, model.ErrForbidden)

	for _, key := range e.server.Keys() {
		assert.Equal(t, roomTTL, e.server.TTL(key), key)
	}
}

func (s *SessionIntegrationSuite) TestClearRoomData(t provider.T) {
	t.Parallel()
	e := newEnv(t)
	roomID := e.swipingRoom(t, alice, bob, "1", "2")

	assert.ErrorIs(t, e.rooms.ClearRoomData(e.ctx, roomID, carol), model.ErrForbidden)
	require.NoError(t, e.rooms.ClearRoomData(e.ctx, roomID, alice))
	assert.Empty(t, e.server.Keys())
}

func (s *SessionIntegrationSuite) TestDraftRules(t provider.T) {
	t.Parallel()
	e := newEnv(t)
	roomID := e.selectingRoom(t, alice, bob)

	for i := range usecase_selection.DefaultDraftLimit {
		added, err := e.selection.AddMediaToDraft(e.ctx, alice, roomID, strconv.Itoa(i))
		require.NoError(t, err)
		require.True(t, added)
	}
	_, err := e.selection.AddMediaToDraft(e.ctx, alice, roomID, "overflow")
	assert.ErrorIs(t, err, model.ErrLimitExceeded)

	added, err := e.selection.AddMediaToDraft(e.ctx, alice, roomID, "0")
	assert.NoError(t, err)
	assert.False(t, added)

	removed, err := e.selection.DeleteMediaFromDraft(e.ctx, alice, roomID, "0")
	require.NoError(t, err)
	assert.True(t, removed)
	added, err = e.selection.AddMediaToDraft(e.ctx, alice, roomID, "overflow")
	require.NoError(t, err)
	assert.True(t, added)

	_, err = e.selection.AddMediaToDraft(e.ctx, carol, roomID, "x")
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func (s *SessionIntegrationSuite) TestEmptyDraftsGiveEmptyPool(t provider.T) {
	t.Parallel()
	e := newEnv(t)
	roomID := e.swipingRoom(t, alice, bob)

	pool, err := e.readiness.Pool(e.ctx, roomID, alice)
	require.NoError(t, err)
	assert.Empty(t, pool)

	_, err = e.swipes.ProcessSwipe(e.ctx, model.SwipeLike, alice, roomID, "1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func (s *SessionIntegrationSuite) TestSwipeResubmissionIsIdempotent(t provider.T) {
	t.Parallel()
	e := newEnv(t)
	roomID := e.swipingRoom(t, alice, bob, "5", "6")

	for range 3 {
		result, err := e.swipes.ProcessSwipe(e.ctx, model.SwipeSkip, alice, roomID, "5")
		require.NoError(t, err)
		assert.False(t, result.IsMatch)
	}

	// The first decision stands even when it is resubmitted differently.
	_, err := e.swipes.ProcessSwipe(e.ctx, model.SwipeLike, alice, roomID, "5")
	require.NoError(t, err)
	result, err := e.swipes.ProcessSwipe(e.ctx, model.SwipeLike, bob, roomID, "5")
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
	assert.Equal(t, model.StatusSwiping, e.status(t, roomID))

	_, err = e.swipes.ProcessSwipe(e.ctx, model.SwipeLike, carol, roomID, "6")
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func (s *SessionIntegrationSuite) TestRoomExpires(t provider.T) {
	t.Parallel()
	e := newEnv(t)
	roomID := e.selectingRoom(t, alice, bob)

	e.server.FastForward(roomTTL - time.Minute)
	_, err := e.selection.AddMediaToDraft(e.ctx, alice, roomID, "1")
	require.NoError(t, err)

	e.server.FastForward(roomTTL - time.Minute)
	assert.Equal(t, model.StatusSelecting, e.status(t, roomID))

	e.server.FastForward(2 * time.Minute)
	_, err = e.rooms.RoomData(e.ctx, roomID, alice)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSessionIntegrationSuite(t *testing.T) {
	suite.RunSuite(t, new(SessionIntegrationSuite))
}

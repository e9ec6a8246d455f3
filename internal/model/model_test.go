package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type ModelSuite struct {
	suite.Suite
}

func (s *ModelSuite) TestCodeOf(t provider.T) {
	t.Parallel()

	testCases := []struct {
		err      error
		expected ErrorCode
	}{
		{fmt.Errorf("room X: %w", ErrNotFound), CodeNotFound},
		{fmt.Errorf("room X is MATCHED: %w", ErrInvalidState), CodeInvalidState},
		{ErrForbidden, CodeForbidden},
		{fmt.Errorf("room is full: %w", ErrConflict), CodeConflict},
		{ErrLimitExceeded, CodeLimitExceeded},
		{ErrInvalidInput, CodeInvalidInput},
		{errors.New("dial tcp: connection refused"), CodeInternal},
		{errors.Join(ErrInternal, ErrNotFound), CodeInternal},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, CodeOf(tc.err), tc.err.Error())
	}
}

func (s *ModelSuite) TestInternal(t provider.T) {
	t.Parallel()

	assert.NoError(t, Internal(nil))

	domain := fmt.Errorf("wrapped: %w", ErrForbidden)
	assert.Same(t, domain, Internal(domain))

	raw := errors.New("i/o timeout")
	wrapped := Internal(raw)
	assert.ErrorIs(t, wrapped, ErrInternal)
	assert.ErrorIs(t, wrapped, raw)
}

func (s *ModelSuite) TestStatusTransitions(t provider.T) {
	t.Parallel()

	allowed := map[Status][]Status{
		StatusWaiting:   {StatusSelecting, StatusCancelled},
		StatusSelecting: {StatusSwiping, StatusCancelled},
		StatusSwiping:   {StatusMatched, StatusCancelled},
		StatusMatched:   {},
		StatusCancelled: {},
	}
	all := []Status{StatusWaiting, StatusSelecting, StatusSwiping, StatusMatched, StatusCancelled}

	for from, targets := range allowed {
		for _, to := range all {
			assert.Equal(t, contains(targets, to), from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.True(t, StatusMatched.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusSwiping.IsTerminal())
	assert.True(t, StatusWaiting.AcceptsDrafts())
	assert.False(t, StatusSwiping.AcceptsDrafts())
}

func contains(statuses []Status, s Status) bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s *ModelSuite) TestRoomMembership(t provider.T) {
	t.Parallel()

	room := Room{HostID: "h", GuestID: "g"}
	assert.True(t, room.IsHost("h"))
	assert.False(t, room.IsHost("g"))
	assert.True(t, room.IsMember("g"))
	assert.False(t, room.IsMember(""))
	assert.Equal(t, UserID("g"), room.Opponent("h"))
	assert.Equal(t, UserID("h"), room.Opponent("g"))
	assert.Equal(t, UserID(""), room.Opponent("x"))
	assert.Equal(t, []UserID{"h", "g"}, room.MemberIDs())

	alone := Room{HostID: "h"}
	assert.Equal(t, UserID(""), alone.Opponent("h"))
	assert.Equal(t, []UserID{"h"}, alone.MemberIDs())
	assert.False(t, alone.IsMember(""))
}

func (s *ModelSuite) TestSwipeAction(t provider.T) {
	t.Parallel()

	assert.True(t, SwipeLike.Valid())
	assert.True(t, SwipeSkip.Valid())
	assert.False(t, SwipeAction("like").Valid())
}

func TestModelSuite(t *testing.T) {
	suite.RunSuite(t, new(ModelSuite))
}

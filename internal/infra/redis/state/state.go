package infra_redis_state

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/kinomatch/core/internal/model"
)

const (
	flagOn  = "1"
	flagOff = "0"
)

// Driver keeps the ephemeral state of matching rooms in Redis.
// All keys of a room share one TTL which every mutating call pushes forward.
type Driver struct {
	client *redis.Client
	ttl    time.Duration
}

func New(
	client *redis.Client,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		ttl:    ttl,
	}
}

func (d *Driver) CreateRoom(ctx context.Context, room model.Room, host model.Member) error {
	c := d.client.WithContext(ctx)
	code, err := runCode(c, createRoomScript,
		[]string{roomKey(room.ID), membersKey(room.ID)},
		string(room.Status), host.UserID, host.Nickname, room.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return err
	}
	if err := codeErr(code, "create room "+room.ID); err != nil {
		return err
	}
	return d.touch(c, room.ID)
}

func (d *Driver) LoadRoom(ctx context.Context, roomID model.RoomID) (model.Room, error) {
	fields, err := d.client.WithContext(ctx).HGetAll(roomKey(roomID)).Result()
	if err != nil {
		return model.Room{}, err
	}
	if len(fields) == 0 {
		return model.Room{}, fmt.Errorf("room %s: %w", roomID, model.ErrNotFound)
	}

	return parseRoom(roomID, fields), nil
}

func parseRoom(roomID model.RoomID, fields map[string]string) model.Room {
	room := model.Room{
		ID:         roomID,
		Status:     model.Status(fields[fieldStatus]),
		HostID:     fields[fieldHostID],
		GuestID:    fields[fieldGuestID],
		HostReady:  fields[fieldHostReady] == flagOn,
		GuestReady: fields[fieldGuestReady] == flagOn,
	}
	if ms, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64); err == nil {
		room.CreatedAt = time.UnixMilli(ms).UTC()
	}
	room.Version, _ = strconv.ParseInt(fields[fieldVersion], 10, 64)
	return room
}

// Members lists the room participants, host first.
func (d *Driver) Members(ctx context.Context, roomID model.RoomID) ([]model.Member, error) {
	var (
		hostCmd    *redis.StringCmd
		membersCmd *redis.StringStringMapCmd
	)
	_, err := d.client.WithContext(ctx).Pipelined(func(pipe redis.Pipeliner) error {
		hostCmd = pipe.HGet(roomKey(roomID), fieldHostID)
		membersCmd = pipe.HGetAll(membersKey(roomID))
		return nil
	})
	if err == redis.Nil {
		return nil, fmt.Errorf("room %s: %w", roomID, model.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	hostID := hostCmd.Val()
	members := make([]model.Member, 0, len(membersCmd.Val()))
	for userID, nickname := range membersCmd.Val() {
		members = append(members, model.Member{
			UserID:   userID,
			Nickname: nickname,
			IsHost:   userID == hostID,
		})
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].IsHost != members[j].IsHost {
			return members[i].IsHost
		}
		return members[i].UserID < members[j].UserID
	})

	return members, nil
}

// AddMember seats a guest. It returns false if the user already sits in the room.
func (d *Driver) AddMember(ctx context.Context, roomID model.RoomID, member model.Member) (bool, error) {
	c := d.client.WithContext(ctx)
	code, err := runCode(c, addMemberScript,
		[]string{roomKey(roomID), membersKey(roomID)},
		member.UserID, member.Nickname, string(model.StatusWaiting), model.MaxMembers,
	)
	if err != nil {
		return false, err
	}
	if err := codeErr(code, "join room "+roomID); err != nil {
		return false, err
	}
	return code == codeOK, d.touch(c, roomID)
}

// RemoveMember drops the user with their draft and swipes and returns how
// many members are left. Removing the last member deletes the room.
func (d *Driver) RemoveMember(ctx context.Context, roomID model.RoomID, userID model.UserID) (int, error) {
	c := d.client.WithContext(ctx)
	left, err := runCode(c, removeMemberScript,
		[]string{roomKey(roomID), membersKey(roomID), draftKey(roomID, userID), swipesKey(roomID, userID), poolKey(roomID)},
		userID,
	)
	if err != nil {
		return 0, err
	}
	if left < 0 {
		return 0, fmt.Errorf("user %s in room %s: %w", userID, roomID, model.ErrForbidden)
	}
	if left > 0 {
		return int(left), d.touch(c, roomID)
	}
	return 0, nil
}

// DeleteRoom removes every key of the room.
func (d *Driver) DeleteRoom(ctx context.Context, roomID model.RoomID) error {
	c := d.client.WithContext(ctx)
	keys, err := d.roomKeys(c, roomID)
	if err != nil {
		return err
	}
	return c.Del(keys...).Err()
}

// Transition moves the room to status `to` if it currently is in one of `from`.
// It returns the status observed before the call.
func (d *Driver) Transition(ctx context.Context, roomID model.RoomID, to model.Status, from ...model.Status) (model.Status, error) {
	c := d.client.WithContext(ctx)
	args := make([]interface{}, 0, len(from)+1)
	args = append(args, string(to))
	for _, s := range from {
		args = append(args, string(s))
	}

	code, prev, err := runPair(c, transitionScript, []string{roomKey(roomID)}, args...)
	if err != nil {
		return "", err
	}
	switch code {
	case codeOK:
		return model.Status(prev), d.touch(c, roomID)
	case codeNoop:
		return model.Status(prev), fmt.Errorf("room %s is %s, cannot become %s: %w", roomID, prev, to, model.ErrInvalidState)
	}
	return "", codeErr(code, "transition room "+roomID)
}

func (d *Driver) SetReady(ctx context.Context, roomID model.RoomID, userID model.UserID, ready bool) error {
	c := d.client.WithContext(ctx)
	flag := flagOff
	if ready {
		flag = flagOn
	}
	code, err := runCode(c, setReadyScript, []string{roomKey(roomID)}, userID, flag, string(model.StatusSelecting))
	if err != nil {
		return err
	}
	if err := codeErr(code, "set ready in room "+roomID); err != nil {
		return err
	}
	return d.touch(c, roomID)
}

func (d *Driver) Draft(ctx context.Context, roomID model.RoomID, userID model.UserID) ([]model.MediaID, error) {
	return d.client.WithContext(ctx).SMembers(draftKey(roomID, userID)).Result()
}

// AddToDraft returns false if the media is already drafted.
func (d *Driver) AddToDraft(ctx context.Context, roomID model.RoomID, userID model.UserID, mediaID model.MediaID, limit int) (bool, error) {
	c := d.client.WithContext(ctx)
	code, err := runCode(c, addDraftScript,
		[]string{roomKey(roomID), membersKey(roomID), draftKey(roomID, userID)},
		userID, mediaID, limit, d.ttl.Milliseconds(),
	)
	if err != nil {
		return false, err
	}
	if code == codeLimit {
		return false, fmt.Errorf("draft holds %d entries: %w", limit, model.ErrLimitExceeded)
	}
	if err := codeErr(code, "draft in room "+roomID); err != nil {
		return false, err
	}
	return code == codeOK, d.touch(c, roomID)
}

// RemoveFromDraft returns false if the media was not drafted.
func (d *Driver) RemoveFromDraft(ctx context.Context, roomID model.RoomID, userID model.UserID, mediaID model.MediaID) (bool, error) {
	c := d.client.WithContext(ctx)
	code, err := runCode(c, removeDraftScript,
		[]string{roomKey(roomID), membersKey(roomID), draftKey(roomID, userID)},
		userID, mediaID,
	)
	if err != nil {
		return false, err
	}
	if err := codeErr(code, "draft in room "+roomID); err != nil {
		return false, err
	}
	return code == codeOK, d.touch(c, roomID)
}

// CreatePool stores the pool and moves the room to SWIPING in one step.
// It returns false if the room has already left SELECTING or is not ready,
// and ErrStalePool if pool no longer equals the union of the owners' drafts.
func (d *Driver) CreatePool(ctx context.Context, roomID model.RoomID, owners []model.UserID, pool []model.MediaID) (bool, error) {
	c := d.client.WithContext(ctx)
	keys := make([]string, 0, len(owners)+2)
	keys = append(keys, roomKey(roomID), poolKey(roomID))
	for _, userID := range owners {
		keys = append(keys, draftKey(roomID, userID))
	}
	args := make([]interface{}, len(pool))
	for i, id := range pool {
		args[i] = id
	}

	code, err := runCode(c, createPoolScript, keys, args...)
	if err != nil {
		return false, err
	}
	if code == codeStale {
		return false, model.ErrStalePool
	}
	if err := codeErr(code, "create pool in room "+roomID); err != nil {
		return false, err
	}
	if code == codeNoop {
		return false, nil
	}
	return true, d.touch(c, roomID)
}

func (d *Driver) Pool(ctx context.Context, roomID model.RoomID) ([]model.MediaID, error) {
	return d.client.WithContext(ctx).LRange(poolKey(roomID), 0, -1).Result()
}

// RecordSwipe stores the decision unless one exists and returns the decision
// that is on record afterwards.
func (d *Driver) RecordSwipe(ctx context.Context, roomID model.RoomID, userID model.UserID, mediaID model.MediaID, action model.SwipeAction) (model.SwipeAction, error) {
	c := d.client.WithContext(ctx)
	code, recorded, err := runPair(c, recordSwipeScript,
		[]string{roomKey(roomID), membersKey(roomID), poolKey(roomID), swipesKey(roomID, userID)},
		userID, mediaID, string(action), d.ttl.Milliseconds(),
	)
	if err != nil {
		return "", err
	}
	if code == codeNotFound {
		return "", fmt.Errorf("media %s in room %s: %w", mediaID, roomID, model.ErrNotFound)
	}
	if err := codeErr(code, "swipe in room "+roomID); err != nil {
		return "", err
	}
	return model.SwipeAction(recorded), d.touch(c, roomID)
}

// Swipe returns the recorded decision of the user, false if there is none yet.
func (d *Driver) Swipe(ctx context.Context, roomID model.RoomID, userID model.UserID, mediaID model.MediaID) (model.SwipeAction, bool, error) {
	action, err := d.client.WithContext(ctx).HGet(swipesKey(roomID, userID), mediaID).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return model.SwipeAction(action), true, nil
}

// FinalizeMatch moves the room from SWIPING to MATCHED. Exactly one caller
// succeeds; a second finalize fails with ErrConflict.
func (d *Driver) FinalizeMatch(ctx context.Context, roomID model.RoomID, mediaID model.MediaID, matchedAt time.Time) error {
	c := d.client.WithContext(ctx)
	code, err := runCode(c, finalizeMatchScript, []string{roomKey(roomID)}, mediaID, matchedAt.UnixMilli())
	if err != nil {
		return err
	}
	if code == codeConflict {
		return fmt.Errorf("room %s already matched: %w", roomID, model.ErrConflict)
	}
	if err := codeErr(code, "finalize match in room "+roomID); err != nil {
		return err
	}
	return d.touch(c, roomID)
}

// RevertMatch undoes FinalizeMatch for mediaID.
func (d *Driver) RevertMatch(ctx context.Context, roomID model.RoomID, mediaID model.MediaID) error {
	_, err := runCode(d.client.WithContext(ctx), revertMatchScript, []string{roomKey(roomID)}, mediaID)
	return err
}

// touch refreshes the TTL of every key the room owns.
func (d *Driver) touch(c *redis.Client, roomID model.RoomID) error {
	if d.ttl <= 0 {
		return nil
	}
	keys, err := d.roomKeys(c, roomID)
	if err != nil {
		return err
	}
	_, err = c.Pipelined(func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			pipe.Expire(key, d.ttl)
		}
		return nil
	})
	return err
}

func (d *Driver) roomKeys(c *redis.Client, roomID model.RoomID) ([]string, error) {
	ids, err := c.HMGet(roomKey(roomID), fieldHostID, fieldGuestID).Result()
	if err != nil {
		return nil, err
	}

	keys := []string{roomKey(roomID), membersKey(roomID), poolKey(roomID)}
	for _, id := range ids {
		userID, ok := id.(string)
		if !ok || userID == "" {
			continue
		}
		keys = append(keys, draftKey(roomID, userID), swipesKey(roomID, userID))
	}
	return keys, nil
}

func runCode(c *redis.Client, script *redis.Script, keys []string, args ...interface{}) (int64, error) {
	res, err := script.Run(c, keys, args...).Result()
	if err != nil {
		return 0, err
	}
	code, ok := res.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected script reply %T", res)
	}
	return code, nil
}

func runPair(c *redis.Client, script *redis.Script, keys []string, args ...interface{}) (int64, string, error) {
	res, err := script.Run(c, keys, args...).Result()
	if err != nil {
		return 0, "", err
	}
	pair, ok := res.([]interface{})
	if !ok || len(pair) != 2 {
		return 0, "", fmt.Errorf("unexpected script reply %v", res)
	}
	code, ok := pair[0].(int64)
	if !ok {
		return 0, "", fmt.Errorf("unexpected script code %T", pair[0])
	}
	value, _ := pair[1].(string)
	return code, value, nil
}

func codeErr(code int64, op string) error {
	switch code {
	case codeNotFound:
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	case codeInvalidState:
		return fmt.Errorf("%s: %w", op, model.ErrInvalidState)
	case codeConflict:
		return fmt.Errorf("%s: %w", op, model.ErrConflict)
	case codeLimit:
		return fmt.Errorf("%s: %w", op, model.ErrLimitExceeded)
	case codeForbidden:
		return fmt.Errorf("%s: %w", op, model.ErrForbidden)
	case codeStale:
		return fmt.Errorf("%s: %w", op, model.ErrStalePool)
	}
	return nil
}

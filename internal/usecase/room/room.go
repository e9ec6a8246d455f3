package usecase_room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/humanbelnik/kinomatch/core/internal/model"
)

var (
	ErrRoomsUnavailable = fmt.Errorf("no free invite code: %w", model.ErrConflict)
	ErrRoomFull         = fmt.Errorf("room is full: %w", model.ErrConflict)
)

//go:generate mockery --name=RoomStore --output=./mocks/room/store --filename=store.go
type RoomStore interface {
	CreateRoom(ctx context.Context, room model.Room, host model.Member) error
	LoadRoom(ctx context.Context, roomID model.RoomID) (model.Room, error)
	Members(ctx context.Context, roomID model.RoomID) ([]model.Member, error)
	AddMember(ctx context.Context, roomID model.RoomID, member model.Member) (bool, error)
	RemoveMember(ctx context.Context, roomID model.RoomID, userID model.UserID) (int, error)
	DeleteRoom(ctx context.Context, roomID model.RoomID) error
}

//go:generate mockery --name=RoomArchive --output=./mocks/room/archive --filename=archive.go
type RoomArchive interface {
	Create(ctx context.Context, room model.Room) error
}

type Usecase struct {
	store   RoomStore
	archive RoomArchive

	generateCode func() (string, error)
	nicknames    *nicknamePicker
	now          func() time.Time
	logger       *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithCodeGenerator(gen func() (string, error)) Option {
	return func(u *Usecase) {
		u.generateCode = gen
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	store RoomStore,
	archive RoomArchive,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		store:        store,
		archive:      archive,
		generateCode: GenerateCode,
		nicknames:    newNicknamePicker(),
		now:          time.Now,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateRoom opens a room in WAITING with userID as its host.
func (u *Usecase) CreateRoom(ctx context.Context, userID model.UserID) (model.RoomData, error) {
	if userID == "" {
		return model.RoomData{}, fmt.Errorf("%w: empty user id", model.ErrInvalidInput)
	}

	host := model.Member{
		UserID:   userID,
		Nickname: u.nicknames.pick(nil),
		IsHost:   true,
	}

	room, err := u.createRoom(ctx, host)
	if err != nil {
		return model.RoomData{}, err
	}

	if u.archive != nil {
		if err := u.archive.Create(ctx, room); err != nil {
			u.logger.Warn("failed to archive room",
				slog.String("room", room.ID),
				slog.String("error", err.Error()))
		}
	}

	u.logger.Info("room created", slog.String("room", room.ID), slog.String("user_id", userID))

	return model.RoomData{
		RoomID:   room.ID,
		UserID:   userID,
		Nickname: host.Nickname,
		IsHost:   true,
		Status:   room.Status,
		Members:  []model.Member{host},
	}, nil
}

// Assuming that codes can conflict.
// Retrying...
func (u *Usecase) createRoom(ctx context.Context, host model.Member) (model.Room, error) {
	var retries = 3
	for retries > 0 {
		code, err := u.generateCode()
		if err != nil {
			return model.Room{}, errors.Join(model.ErrInternal, err)
		}

		room := model.Room{
			ID:        code,
			Status:    model.StatusWaiting,
			HostID:    host.UserID,
			CreatedAt: u.now().UTC(),
		}
		err = u.store.CreateRoom(ctx, room, host)
		if err == nil {
			return room, nil
		}
		if !errors.Is(err, model.ErrConflict) {
			return model.Room{}, model.Internal(err)
		}
		retries--
	}
	return model.Room{}, ErrRoomsUnavailable
}

// AddUserToRoom seats userID as the guest. A member joining again gets the
// current snapshot back.
func (u *Usecase) AddUserToRoom(ctx context.Context, roomID model.RoomID, userID model.UserID) (model.RoomData, error) {
	if userID == "" {
		return model.RoomData{}, fmt.Errorf("%w: empty user id", model.ErrInvalidInput)
	}

	room, err := u.store.LoadRoom(ctx, roomID)
	if err != nil {
		return model.RoomData{}, model.Internal(err)
	}
	if room.IsMember(userID) {
		return u.snapshot(ctx, room, userID)
	}
	if room.Status != model.StatusWaiting {
		return model.RoomData{}, fmt.Errorf("room %s is %s: %w", roomID, room.Status, model.ErrInvalidState)
	}

	members, err := u.store.Members(ctx, roomID)
	if err != nil {
		return model.RoomData{}, model.Internal(err)
	}
	if len(members) >= model.MaxMembers {
		return model.RoomData{}, ErrRoomFull
	}

	taken := make(map[string]bool, len(members))
	for _, m := range members {
		taken[m.Nickname] = true
	}
	guest := model.Member{
		UserID:   userID,
		Nickname: u.nicknames.pick(taken),
	}

	if _, err := u.store.AddMember(ctx, roomID, guest); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.RoomData{}, ErrRoomFull
		}
		return model.RoomData{}, model.Internal(err)
	}

	u.logger.Info("user joined room", slog.String("room", roomID), slog.String("user_id", userID))

	room, err = u.store.LoadRoom(ctx, roomID)
	if err != nil {
		return model.RoomData{}, model.Internal(err)
	}
	return u.snapshot(ctx, room, userID)
}

// RemoveUserFromRoom drops userID. The store deletes the room together with
// its last member.
func (u *Usecase) RemoveUserFromRoom(ctx context.Context, roomID model.RoomID, userID model.UserID) error {
	left, err := u.store.RemoveMember(ctx, roomID, userID)
	if err != nil {
		return model.Internal(err)
	}

	u.logger.Info("user left room",
		slog.String("room", roomID),
		slog.String("user_id", userID),
		slog.Int("members_left", left))
	return nil
}

// ClearRoomData removes every trace of the room. Only members may do so.
func (u *Usecase) ClearRoomData(ctx context.Context, roomID model.RoomID, userID model.UserID) error {
	room, err := u.store.LoadRoom(ctx, roomID)
	if err != nil {
		return model.Internal(err)
	}
	if !room.IsMember(userID) {
		return fmt.Errorf("user %s in room %s: %w", userID, roomID, model.ErrForbidden)
	}

	if err := u.store.DeleteRoom(ctx, roomID); err != nil {
		return model.Internal(err)
	}

	u.logger.Info("room cleared", slog.String("room", roomID), slog.String("user_id", userID))
	return nil
}

// RoomData returns the room snapshot as seen by userID.
func (u *Usecase) RoomData(ctx context.Context, roomID model.RoomID, userID model.UserID) (model.RoomData, error) {
	room, err := u.store.LoadRoom(ctx, roomID)
	if err != nil {
		return model.RoomData{}, model.Internal(err)
	}
	if !room.IsMember(userID) {
		return model.RoomData{}, fmt.Errorf("user %s in room %s: %w", userID, roomID, model.ErrForbidden)
	}
	return u.snapshot(ctx, room, userID)
}

func (u *Usecase) snapshot(ctx context.Context, room model.Room, userID model.UserID) (model.RoomData, error) {
	members, err := u.store.Members(ctx, room.ID)
	if err != nil {
		return model.RoomData{}, model.Internal(err)
	}

	data := model.RoomData{
		RoomID:  room.ID,
		UserID:  userID,
		IsHost:  room.IsHost(userID),
		Status:  room.Status,
		Members: members,
	}
	for _, m := range members {
		if m.UserID == userID {
			data.Nickname = m.Nickname
		}
	}
	return data, nil
}

package usecase_readiness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/humanbelnik/kinomatch/core/internal/model"
)

const defaultPoolAttempts = 5

//go:generate mockery --name=StateStore --output=./mocks/readiness/store --filename=store.go
type StateStore interface {
	LoadRoom(ctx context.Context, roomID model.RoomID) (model.Room, error)
	Transition(ctx context.Context, roomID model.RoomID, to model.Status, from ...model.Status) (model.Status, error)
	SetReady(ctx context.Context, roomID model.RoomID, userID model.UserID, ready bool) error
	Draft(ctx context.Context, roomID model.RoomID, userID model.UserID) ([]model.MediaID, error)
	CreatePool(ctx context.Context, roomID model.RoomID, owners []model.UserID, pool []model.MediaID) (bool, error)
	Pool(ctx context.Context, roomID model.RoomID) ([]model.MediaID, error)
}

//go:generate mockery --name=StatusArchive --output=./mocks/readiness/archive --filename=archive.go
type StatusArchive interface {
	SetStatus(ctx context.Context, roomID model.RoomID, status model.Status) error
}

type Usecase struct {
	store   StateStore
	archive StatusArchive

	shuffle      func([]model.MediaID)
	poolAttempts int
	logger       *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithShuffle(shuffle func([]model.MediaID)) Option {
	return func(u *Usecase) {
		u.shuffle = shuffle
	}
}

func New(
	store StateStore,
	archive StatusArchive,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		store:        store,
		archive:      archive,
		shuffle:      fisherYates,
		poolAttempts: defaultPoolAttempts,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ValidateRoomStatus loads the room and requires it to be SWIPING.
func (u *Usecase) ValidateRoomStatus(ctx context.Context, roomID model.RoomID) (model.Room, error) {
	room, err := u.store.LoadRoom(ctx, roomID)
	if err != nil {
		return model.Room{}, model.Internal(err)
	}
	if room.Status != model.StatusSwiping {
		return model.Room{}, fmt.Errorf("room %s is %s: %w", roomID, room.Status, model.ErrInvalidState)
	}
	return room, nil
}

// StartSelections lets the host move a full room from WAITING to SELECTING.
func (u *Usecase) StartSelections(ctx context.Context, roomID model.RoomID, userID model.UserID) error {
	room, err := u.store.LoadRoom(ctx, roomID)
	if err != nil {
		return model.Internal(err)
	}

	switch {
	case !room.IsHost(userID):
		return fmt.Errorf("only the host starts selections: %w", model.ErrInvalidState)
	case room.Status != model.StatusWaiting:
		return fmt.Errorf("room %s is %s: %w", roomID, room.Status, model.ErrInvalidState)
	case room.GuestID == "":
		return fmt.Errorf("room %s waits for a guest: %w", roomID, model.ErrInvalidState)
	}

	if _, err := u.store.Transition(ctx, roomID, model.StatusSelecting, model.StatusWaiting); err != nil {
		return model.Internal(err)
	}

	u.logger.Info("selections started", slog.String("room", roomID))
	return nil
}

// SetUserReadiness stores the ready flag of userID. The call that observes
// both members ready builds the media pool and returns SWIPING.
func (u *Usecase) SetUserReadiness(ctx context.Context, roomID model.RoomID, userID model.UserID, ready bool) (model.Status, error) {
	room, err := u.store.LoadRoom(ctx, roomID)
	if err != nil {
		return "", model.Internal(err)
	}
	if !room.IsMember(userID) {
		return "", fmt.Errorf("user %s in room %s: %w", userID, roomID, model.ErrForbidden)
	}
	if room.Status != model.StatusSelecting {
		return "", fmt.Errorf("room %s is %s: %w", roomID, room.Status, model.ErrInvalidState)
	}

	if err := u.store.SetReady(ctx, roomID, userID, ready); err != nil {
		return "", model.Internal(err)
	}
	if !ready {
		return model.StatusSelecting, nil
	}

	for range u.poolAttempts {
		room, err = u.store.LoadRoom(ctx, roomID)
		if err != nil {
			return "", model.Internal(err)
		}
		if room.Status != model.StatusSelecting || !room.BothReady() {
			return room.Status, nil
		}

		pool, err := u.buildPool(ctx, room)
		if err != nil {
			return "", model.Internal(err)
		}

		created, err := u.store.CreatePool(ctx, roomID, room.MemberIDs(), pool)
		if errors.Is(err, model.ErrStalePool) {
			u.logger.Debug("draft changed while building pool, retrying", slog.String("room", roomID))
			continue
		}
		if err != nil {
			return "", model.Internal(err)
		}
		if created {
			u.logger.Info("media pool created",
				slog.String("room", roomID),
				slog.Int("size", len(pool)))
			return model.StatusSwiping, nil
		}
	}

	room, err = u.store.LoadRoom(ctx, roomID)
	if err != nil {
		return "", model.Internal(err)
	}
	if room.Status == model.StatusSwiping {
		return model.StatusSwiping, nil
	}
	return "", fmt.Errorf("room %s: pool creation kept racing with draft edits: %w", roomID, model.ErrConflict)
}

func (u *Usecase) buildPool(ctx context.Context, room model.Room) ([]model.MediaID, error) {
	owners := room.MemberIDs()
	drafts := make([][]model.MediaID, 0, len(owners))
	for _, userID := range owners {
		draft, err := u.store.Draft(ctx, room.ID, userID)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}

	pool := mergeDrafts(drafts...)
	u.shuffle(pool)
	return pool, nil
}

// HandleUserDisconnect cancels a live room and reports whether it did.
// Rooms that already reached a terminal status, or expired, are left as they are.
func (u *Usecase) HandleUserDisconnect(ctx context.Context, roomID model.RoomID, userID model.UserID) (bool, error) {
	prev, err := u.store.Transition(ctx, roomID, model.StatusCancelled,
		model.StatusWaiting, model.StatusSelecting, model.StatusSwiping)
	if errors.Is(err, model.ErrInvalidState) || errors.Is(err, model.ErrNotFound) {
		u.logger.Debug("disconnect from finished room",
			slog.String("room", roomID),
			slog.String("status", string(prev)))
		return false, nil
	}
	if err != nil {
		return false, model.Internal(err)
	}

	u.logger.Info("room cancelled",
		slog.String("room", roomID),
		slog.String("user_id", userID),
		slog.String("from", string(prev)))

	if u.archive != nil {
		if err := u.archive.SetStatus(ctx, roomID, model.StatusCancelled); err != nil {
			u.logger.Warn("failed to archive room status",
				slog.String("room", roomID),
				slog.String("error", err.Error()))
		}
	}
	return true, nil
}

// Pool returns the media pool of a room the caller belongs to.
func (u *Usecase) Pool(ctx context.Context, roomID model.RoomID, userID model.UserID) ([]model.MediaID, error) {
	room, err := u.store.LoadRoom(ctx, roomID)
	if err != nil {
		return nil, model.Internal(err)
	}
	if !room.IsMember(userID) {
		return nil, fmt.Errorf("user %s in room %s: %w", userID, roomID, model.ErrForbidden)
	}
	if room.Status == model.StatusWaiting || room.Status == model.StatusSelecting {
		return nil, fmt.Errorf("room %s is %s: %w", roomID, room.Status, model.ErrInvalidState)
	}

	pool, err := u.store.Pool(ctx, roomID)
	if err != nil {
		return nil, model.Internal(err)
	}
	return pool, nil
}

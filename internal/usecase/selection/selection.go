package usecase_selection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/humanbelnik/kinomatch/core/internal/model"
)

const DefaultDraftLimit = 50

//go:generate mockery --name=DraftStore --output=./mocks/selection/store --filename=store.go
type DraftStore interface {
	LoadRoom(ctx context.Context, roomID model.RoomID) (model.Room, error)
	Draft(ctx context.Context, roomID model.RoomID, userID model.UserID) ([]model.MediaID, error)
	AddToDraft(ctx context.Context, roomID model.RoomID, userID model.UserID, mediaID model.MediaID, limit int) (bool, error)
	RemoveFromDraft(ctx context.Context, roomID model.RoomID, userID model.UserID, mediaID model.MediaID) (bool, error)
}

type Usecase struct {
	store  DraftStore
	limit  int
	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	store DraftStore,
	limit int,
	opts ...Option,
) *Usecase {
	if limit <= 0 {
		limit = DefaultDraftLimit
	}

	u := &Usecase{
		store:  store,
		limit:  limit,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// AddMediaToDraft reports whether the draft grew. Re-adding a drafted media
// is not an error and returns false.
func (u *Usecase) AddMediaToDraft(ctx context.Context, userID model.UserID, roomID model.RoomID, mediaID model.MediaID) (bool, error) {
	if err := u.authorize(ctx, userID, roomID, mediaID); err != nil {
		return false, err
	}

	added, err := u.store.AddToDraft(ctx, roomID, userID, mediaID, u.limit)
	if err != nil {
		return false, model.Internal(err)
	}

	if added {
		u.logger.Debug("media drafted",
			slog.String("room", roomID),
			slog.String("user_id", userID),
			slog.String("media_id", mediaID))
	}
	return added, nil
}

// DeleteMediaFromDraft reports whether an entry was actually removed.
func (u *Usecase) DeleteMediaFromDraft(ctx context.Context, userID model.UserID, roomID model.RoomID, mediaID model.MediaID) (bool, error) {
	if err := u.authorize(ctx, userID, roomID, mediaID); err != nil {
		return false, err
	}

	removed, err := u.store.RemoveFromDraft(ctx, roomID, userID, mediaID)
	if err != nil {
		return false, model.Internal(err)
	}
	return removed, nil
}

// Draft returns the caller's own draft.
func (u *Usecase) Draft(ctx context.Context, userID model.UserID, roomID model.RoomID) ([]model.MediaID, error) {
	room, err := u.store.LoadRoom(ctx, roomID)
	if err != nil {
		return nil, model.Internal(err)
	}
	if !room.IsMember(userID) {
		return nil, fmt.Errorf("user %s in room %s: %w", userID, roomID, model.ErrForbidden)
	}

	draft, err := u.store.Draft(ctx, roomID, userID)
	if err != nil {
		return nil, model.Internal(err)
	}
	return draft, nil
}

func (u *Usecase) authorize(ctx context.Context, userID model.UserID, roomID model.RoomID, mediaID model.MediaID) error {
	if mediaID == "" {
		return fmt.Errorf("%w: empty media id", model.ErrInvalidInput)
	}

	room, err := u.store.LoadRoom(ctx, roomID)
	if err != nil {
		return model.Internal(err)
	}
	if !room.IsMember(userID) {
		return fmt.Errorf("user %s in room %s: %w", userID, roomID, model.ErrForbidden)
	}
	if !room.Status.AcceptsDrafts() {
		return fmt.Errorf("room %s is %s: %w", roomID, room.Status, model.ErrInvalidState)
	}
	return nil
}

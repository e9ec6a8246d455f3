package usecase_swipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/humanbelnik/kinomatch/core/internal/model"
)

//go:generate mockery --name=RoomValidator --output=./mocks/swipe/validator --filename=validator.go
type RoomValidator interface {
	ValidateRoomStatus(ctx context.Context, roomID model.RoomID) (model.Room, error)
}

//go:generate mockery --name=SwipeStore --output=./mocks/swipe/store --filename=store.go
type SwipeStore interface {
	RecordSwipe(ctx context.Context, roomID model.RoomID, userID model.UserID, mediaID model.MediaID, action model.SwipeAction) (model.SwipeAction, error)
	Swipe(ctx context.Context, roomID model.RoomID, userID model.UserID, mediaID model.MediaID) (model.SwipeAction, bool, error)
	FinalizeMatch(ctx context.Context, roomID model.RoomID, mediaID model.MediaID, matchedAt time.Time) error
	RevertMatch(ctx context.Context, roomID model.RoomID, mediaID model.MediaID) error
}

//go:generate mockery --name=MediaCatalog --output=./mocks/swipe/catalog --filename=catalog.go
type MediaCatalog interface {
	LoadByID(ctx context.Context, id model.MediaID) (model.Media, error)
}

//go:generate mockery --name=MatchRepository --output=./mocks/swipe/matches --filename=matches.go
type MatchRepository interface {
	SaveMatch(ctx context.Context, roomID model.RoomID, mediaID model.MediaID, matchedAt time.Time) error
}

type Usecase struct {
	rooms   RoomValidator
	store   SwipeStore
	catalog MediaCatalog
	matches MatchRepository

	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	rooms RoomValidator,
	store SwipeStore,
	catalog MediaCatalog,
	matches MatchRepository,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		rooms:   rooms,
		store:   store,
		catalog: catalog,
		matches: matches,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ProcessSwipe records the decision of userID on mediaID and finalizes the
// room once both members liked the same media. Whichever call sees both
// decisions first does the finalization; a concurrent second finalization
// fails with ErrConflict.
func (u *Usecase) ProcessSwipe(ctx context.Context, action model.SwipeAction, userID model.UserID, roomID model.RoomID, mediaID model.MediaID) (model.SwipeResult, error) {
	if !action.Valid() {
		return model.SwipeResult{}, fmt.Errorf("%w: unknown swipe action %q", model.ErrInvalidInput, action)
	}

	room, err := u.rooms.ValidateRoomStatus(ctx, roomID)
	if err != nil {
		return model.SwipeResult{}, err
	}
	if !room.IsMember(userID) {
		return model.SwipeResult{}, fmt.Errorf("user %s in room %s: %w", userID, roomID, model.ErrForbidden)
	}

	mine, err := u.store.RecordSwipe(ctx, roomID, userID, mediaID, action)
	if err != nil {
		return model.SwipeResult{}, model.Internal(err)
	}

	opponent := room.Opponent(userID)
	if opponent == "" {
		return model.SwipeResult{}, nil
	}
	theirs, ok, err := u.store.Swipe(ctx, roomID, opponent, mediaID)
	if err != nil {
		return model.SwipeResult{}, model.Internal(err)
	}
	if !ok || !isMatch(mine, theirs) {
		return model.SwipeResult{}, nil
	}

	match, err := u.finalize(ctx, roomID, mediaID)
	if err != nil {
		return model.SwipeResult{}, err
	}
	return model.SwipeResult{IsMatch: true, MatchData: match}, nil
}

func isMatch(a, b model.SwipeAction) bool {
	return a == model.SwipeLike && b == model.SwipeLike
}

func (u *Usecase) finalize(ctx context.Context, roomID model.RoomID, mediaID model.MediaID) (*model.MatchData, error) {
	media, err := u.catalog.LoadByID(ctx, mediaID)
	if err != nil {
		return nil, model.Internal(err)
	}

	matchedAt := u.now().UTC()
	if err := u.store.FinalizeMatch(ctx, roomID, mediaID, matchedAt); err != nil {
		return nil, model.Internal(err)
	}

	if err := u.matches.SaveMatch(ctx, roomID, mediaID, matchedAt); err != nil {
		if revertErr := u.store.RevertMatch(ctx, roomID, mediaID); revertErr != nil {
			u.logger.Error("failed to revert match",
				slog.String("room", roomID),
				slog.String("media_id", mediaID),
				slog.String("error", revertErr.Error()))
			err = errors.Join(err, revertErr)
		}
		return nil, errors.Join(model.ErrInternal, err)
	}

	u.logger.Info("match found",
		slog.String("room", roomID),
		slog.String("media_id", mediaID))

	return &model.MatchData{
		MediaID:    media.ID,
		MediaTitle: media.Title,
		PosterPath: media.PosterPath,
		MatchedAt:  matchedAt,
	}, nil
}

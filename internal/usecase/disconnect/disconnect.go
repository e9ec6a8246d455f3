package usecase_disconnect

import (
	"context"
	"log/slog"
	"time"

	"github.com/humanbelnik/kinomatch/core/internal/model"
)

//go:generate mockery --name=Canceller --output=./mocks/disconnect/canceller --filename=canceller.go
type Canceller interface {
	HandleUserDisconnect(ctx context.Context, roomID model.RoomID, userID model.UserID) (bool, error)
}

type Handler struct {
	canceller Canceller
	timers    *Timers
	grace     time.Duration

	// Invoked after a cancellation that happened on a timer, so the
	// gateway can tell the remaining member.
	onCancelled func(roomID model.RoomID, userID model.UserID)
	logger      *slog.Logger
}

type Option func(*Handler)

func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

func WithGracePeriod(grace time.Duration) Option {
	return func(h *Handler) {
		h.grace = grace
	}
}

func WithCancelledHook(fn func(roomID model.RoomID, userID model.UserID)) Option {
	return func(h *Handler) {
		h.onCancelled = fn
	}
}

func New(
	canceller Canceller,
	opts ...Option,
) *Handler {
	h := &Handler{
		canceller:   canceller,
		timers:      NewTimers(),
		onCancelled: func(model.RoomID, model.UserID) {},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ConnectionKey identifies a member across reconnects.
func ConnectionKey(roomID model.RoomID, userID model.UserID) string {
	return roomID + ":" + userID
}

// OnDisconnect cancels the room of a member whose connection dropped.
// Without a grace period the cancellation happens before OnDisconnect
// returns and cancelled tells whether the room was live.
func (h *Handler) OnDisconnect(ctx context.Context, roomID model.RoomID, userID model.UserID) (cancelled bool, err error) {
	if h.grace <= 0 {
		return h.canceller.HandleUserDisconnect(ctx, roomID, userID)
	}

	h.timers.Set(ConnectionKey(roomID, userID), h.grace, func() {
		cancelled, err := h.canceller.HandleUserDisconnect(context.Background(), roomID, userID)
		if err != nil {
			h.logger.Error("failed to cancel room after grace period",
				slog.String("room", roomID),
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
			return
		}
		if cancelled {
			h.onCancelled(roomID, userID)
		}
	})

	h.logger.Info("member disconnected, waiting for reconnect",
		slog.String("room", roomID),
		slog.String("user_id", userID),
		slog.Duration("grace", h.grace))
	return false, nil
}

// OnReconnect stops a pending cancellation and reports whether one was pending.
func (h *Handler) OnReconnect(roomID model.RoomID, userID model.UserID) bool {
	if !h.timers.Clear(ConnectionKey(roomID, userID)) {
		return false
	}
	h.logger.Info("member reconnected in time",
		slog.String("room", roomID),
		slog.String("user_id", userID))
	return true
}

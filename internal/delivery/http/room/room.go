package http_room

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinomatch/core/internal/delivery/http/common"
	http_identity_middleware "github.com/humanbelnik/kinomatch/core/internal/delivery/http/middleware/identity"
	"github.com/humanbelnik/kinomatch/core/internal/model"
)

//go:generate mockery --name=RoomService --output=./mocks/room/rooms --filename=rooms.go
type RoomService interface {
	RoomData(ctx context.Context, roomID model.RoomID, userID model.UserID) (model.RoomData, error)
	ClearRoomData(ctx context.Context, roomID model.RoomID, userID model.UserID) error
}

//go:generate mockery --name=PoolReader --output=./mocks/room/pools --filename=pools.go
type PoolReader interface {
	Pool(ctx context.Context, roomID model.RoomID, userID model.UserID) ([]model.MediaID, error)
}

//go:generate mockery --name=MatchReader --output=./mocks/room/matches --filename=matches.go
type MatchReader interface {
	MatchByRoom(ctx context.Context, roomID model.RoomID) (model.MediaID, time.Time, error)
}

//go:generate mockery --name=MediaCatalog --output=./mocks/room/catalog --filename=catalog.go
type MediaCatalog interface {
	LoadByID(ctx context.Context, id model.MediaID) (model.Media, error)
	LoadByIDs(ctx context.Context, ids []model.MediaID) ([]model.Media, error)
}

type Controller struct {
	rooms    RoomService
	pools    PoolReader
	matches  MatchReader
	catalog  MediaCatalog
	identity gin.HandlerFunc

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	rooms RoomService,
	pools PoolReader,
	matches MatchReader,
	catalog MediaCatalog,
	identity gin.HandlerFunc,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		rooms:    rooms,
		pools:    pools,
		matches:  matches,
		catalog:  catalog,
		identity: identity,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms", c.identity)
	{
		rooms.GET("/:room_id", c.room)
		rooms.GET("/:room_id/pool", c.pool)
		rooms.GET("/:room_id/match", c.match)
		rooms.DELETE("/:room_id", c.clear)
	}
}

type MediaDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title,omitempty"`
	PosterPath string `json:"posterPath,omitempty"`
}

type PoolResponseDTO struct {
	RoomID string     `json:"roomId"`
	Pool   []MediaDTO `json:"pool"`
}

type MatchResponseDTO struct {
	RoomID    string    `json:"roomId"`
	Media     MediaDTO  `json:"media"`
	MatchedAt time.Time `json:"matchedAt"`
}

func (c *Controller) fail(ctx *gin.Context, msg string, err error) {
	status := http_common.StatusOf(err)
	if status == http.StatusInternalServerError {
		c.logger.Error(msg, slog.String("error", err.Error()))
	} else {
		c.logger.Info(msg, slog.String("error", err.Error()))
	}
	ctx.JSON(status, http_common.NewErrorResponse(err))
}

// room returns the caller's view of a room.
// @Summary Состояние комнаты
// @Description Возвращает участников, статус и роль вызывающего
// @Tags Rooms
// @Produce json
// @Param room_id path string true "Код комнаты"
// @Success 200 {object} model.RoomData
// @Failure 403 {object} http_common.ErrorResponse "Не участник комнаты"
// @Failure 404 {object} http_common.ErrorResponse "Комната не найдена"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /rooms/{room_id} [get]
func (c *Controller) room(ctx *gin.Context) {
	roomID := ctx.Param("room_id")
	userID := http_identity_middleware.UserID(ctx)

	data, err := c.rooms.RoomData(ctx.Request.Context(), roomID, userID)
	if err != nil {
		c.fail(ctx, "failed to load room", err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// @Summary Удаление комнаты
// @Tags Rooms
// @Param room_id path string true "Код комнаты"
// @Success 204 "Комната удалена"
// @Failure 403 {object} http_common.ErrorResponse "Не участник комнаты"
// @Failure 404 {object} http_common.ErrorResponse "Комната не найдена"
// @Router /rooms/{room_id} [delete]
func (c *Controller) clear(ctx *gin.Context) {
	roomID := ctx.Param("room_id")
	userID := http_identity_middleware.UserID(ctx)

	if err := c.rooms.ClearRoomData(ctx.Request.Context(), roomID, userID); err != nil {
		c.fail(ctx, "failed to clear room", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Пул аниме для свайпов
// @Tags Rooms
// @Produce json
// @Param room_id path string true "Код комнаты"
// @Success 200 {object} PoolResponseDTO
// @Failure 403 {object} http_common.ErrorResponse "Не участник комнаты"
// @Failure 409 {object} http_common.ErrorResponse "Пул еще не собран"
// @Router /rooms/{room_id}/pool [get]
func (c *Controller) pool(ctx *gin.Context) {
	roomID := ctx.Param("room_id")
	userID := http_identity_middleware.UserID(ctx)

	ids, err := c.pools.Pool(ctx.Request.Context(), roomID, userID)
	if err != nil {
		c.fail(ctx, "failed to load pool", err)
		return
	}

	media, err := c.catalog.LoadByIDs(ctx.Request.Context(), ids)
	if err != nil {
		c.fail(ctx, "failed to describe pool", err)
		return
	}
	known := make(map[model.MediaID]model.Media, len(media))
	for _, m := range media {
		known[m.ID] = m
	}

	resp := PoolResponseDTO{RoomID: roomID, Pool: make([]MediaDTO, 0, len(ids))}
	for _, id := range ids {
		dto := MediaDTO{ID: id}
		if m, ok := known[id]; ok {
			dto = toMediaDTO(m)
		}
		resp.Pool = append(resp.Pool, dto)
	}
	ctx.JSON(http.StatusOK, resp)
}

// match reads the durable match record. Only members of the room may ask.
// @Summary Совпадение комнаты
// @Tags Rooms
// @Produce json
// @Param room_id path string true "Код комнаты"
// @Success 200 {object} MatchResponseDTO
// @Failure 403 {object} http_common.ErrorResponse "Не участник комнаты"
// @Failure 404 {object} http_common.ErrorResponse "Совпадения нет"
// @Router /rooms/{room_id}/match [get]
func (c *Controller) match(ctx *gin.Context) {
	roomID := ctx.Param("room_id")
	userID := http_identity_middleware.UserID(ctx)

	if _, err := c.rooms.RoomData(ctx.Request.Context(), roomID, userID); err != nil {
		c.fail(ctx, "failed to load match", err)
		return
	}

	mediaID, matchedAt, err := c.matches.MatchByRoom(ctx.Request.Context(), roomID)
	if err != nil {
		c.fail(ctx, "failed to load match", err)
		return
	}

	dto := MediaDTO{ID: mediaID}
	if m, err := c.catalog.LoadByID(ctx.Request.Context(), mediaID); err == nil {
		dto = toMediaDTO(m)
	} else {
		c.logger.Warn("matched media not in catalog", slog.String("media_id", mediaID))
	}

	ctx.JSON(http.StatusOK, MatchResponseDTO{
		RoomID:    roomID,
		Media:     dto,
		MatchedAt: matchedAt,
	})
}

func toMediaDTO(m model.Media) MediaDTO {
	return MediaDTO{ID: m.ID, Title: m.Title, PosterPath: m.PosterPath}
}

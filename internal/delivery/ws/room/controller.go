package ws_room

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/kinomatch/core/internal/delivery/http/common"
	http_identity_middleware "github.com/humanbelnik/kinomatch/core/internal/delivery/http/middleware/identity"
)

type Controller struct {
	gateway  *Gateway
	identity gin.HandlerFunc
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewController(gateway *Gateway, identity gin.HandlerFunc) *Controller {
	return &Controller{
		gateway:  gateway,
		identity: identity,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // ! Restrict once the client origin is fixed
			},
		},
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws", c.identity, c.connect)
}

func (c *Controller) connect(ctx *gin.Context) {
	userID := http_identity_middleware.UserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "no user identity",
		})
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade has already replied to the client
		c.logger.Error("failed to upgrade connection", slog.String("error", err.Error()))
		return
	}

	c.logger.Info("client connected", slog.String("user_id", userID))
	client := NewClient(conn, userID)
	go c.gateway.Serve(client)
}

package http_swagger

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controller struct {
	opts []func(*ginSwagger.Config)
}

// New serves the API docs under /swagger. The docs are produced by `swag init`.
func New(opts ...func(*ginSwagger.Config)) *Controller {
	return &Controller{opts: opts}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, c.opts...))
}

package http_init

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
}

func NewControllerPool(middlewares ...gin.HandlerFunc) *ControllerPool {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middlewares...)

	rg := engine.Group(apiPrefix)
	rg.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &ControllerPool{
		pool:   make([]Controller, 0, 4),
		rg:     rg,
		engine: engine,
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

// Engine exposes the router for httptest servers.
func (pool *ControllerPool) Engine() *gin.Engine {
	return pool.engine
}

func (pool *ControllerPool) RunAll(host, port string) {
	if err := pool.engine.Run(host + ":" + port); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

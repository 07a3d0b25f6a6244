package backend

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Mode string
}

// SetupRouter wires the REST API and the notice websocket under /api.
func SetupRouter(ctx context.Context, opts Options, reg *Registry, hub *Hub) *gin.Engine {
	if opts.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if opts.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	h := &handlers{reg: reg, hub: hub}
	api := r.Group("/api")

	api.POST("/auth/register", h.register)

	api.GET("/users/:id", h.getUser)
	api.PATCH("/users/:id", h.updateUser)
	api.POST("/users/:id/block", h.blockUser)

	api.GET("/rooms", h.getRoom)
	api.GET("/rooms/:id", h.getRoomByID)
	api.POST("/rooms", h.createRoom)

	api.GET("/ws", func(c *gin.Context) {
		hub.Serve(ctx, c)
	})

	log.Info().Str("module", "backend.http").Str("mode", opts.Mode).Msg("router setup")
	return r
}

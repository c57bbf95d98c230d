package api

import (
	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill-console/internal/handlers"
)

func registerConnectionRoutes(api *gin.RouterGroup, handler *handlers.ConnectionHandler) {
	connections := api.Group("/connections")
	{
		connections.GET("", handler.List)
		connections.POST("", handler.Create)
		connections.GET("/:id", handler.Get)
		connections.PATCH("/:id", handler.Update)
		connections.DELETE("/:id", handler.Delete)
		connections.POST("/:id/test", handler.Test)
		connections.POST("/:id/start", handler.Start)
		connections.POST("/:id/stop", handler.Stop)
	}
}

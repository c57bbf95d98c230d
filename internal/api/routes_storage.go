package api

import (
	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill-console/internal/handlers"
)

func registerStorageRoutes(api *gin.RouterGroup, handler *handlers.StorageHandler) {
	storage := api.Group("/storage")
	{
		storage.GET("", handler.List)
		storage.POST("", handler.Create)
		storage.GET("/:id", handler.Get)
		storage.PATCH("/:id", handler.Update)
		storage.DELETE("/:id", handler.Delete)
		storage.POST("/:id/test", handler.Test)
		storage.POST("/:id/set-default", handler.SetDefault)
		storage.POST("/:id/toggle-active", handler.ToggleActive)
	}
}

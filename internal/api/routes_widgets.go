package api

import (
	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill-console/internal/handlers"
)

func registerWidgetRoutes(api *gin.RouterGroup, handler *handlers.WidgetHandler) {
	widgets := api.Group("/widgets")
	{
		widgets.GET("", handler.List)
		widgets.POST("", handler.Create)
		widgets.GET("/:id", handler.Get)
		widgets.PATCH("/:id", handler.Update)
		widgets.DELETE("/:id", handler.Delete)
	}
}

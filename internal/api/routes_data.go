package api

import (
	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill-console/internal/handlers"
)

func registerDataRoutes(api *gin.RouterGroup, handler *handlers.ReadingHandler) {
	api.GET("/data/readings", handler.List)
	api.GET("/dashboard/summary", handler.Summary)
}

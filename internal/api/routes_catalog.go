package api

import (
	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill-console/internal/handlers"
)

func registerCatalogRoutes(api *gin.RouterGroup, handler *handlers.CatalogHandler) {
	catalog := api.Group("/catalog")
	{
		catalog.GET("/sources", handler.ListSources)
		catalog.GET("/sources/:tag", handler.DescribeSource)
		catalog.GET("/sources/:tag/form", handler.SourceForm)
		catalog.GET("/storage", handler.ListStorages)
		catalog.GET("/storage/:tag", handler.DescribeStorage)
		catalog.GET("/storage/:tag/form", handler.StorageForm)
		catalog.GET("/widgets", handler.ListWidgets)
		catalog.GET("/widgets/:tag", handler.DescribeWidget)
		catalog.GET("/widgets/:tag/form", handler.WidgetForm)
	}
}

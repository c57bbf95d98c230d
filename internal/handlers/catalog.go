package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill-console/internal/forms"
	"github.com/quillhq/quill-console/internal/registry"
	"github.com/quillhq/quill-console/pkg/errors"
	"github.com/quillhq/quill-console/pkg/response"
)

// CatalogHandler serves the type catalogs that drive the console's dynamic
// configuration forms: data sources, storage back-ends, and dashboard
// widgets.
type CatalogHandler struct {
	sources  *registry.Registry
	storages *registry.Registry
	widgets  *registry.Registry
}

// NewCatalogHandler constructs a handler over the built-in catalogs.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{
		sources:  registry.Sources,
		storages: registry.Storages,
		widgets:  registry.Widgets,
	}
}

// ListSources returns every data-source descriptor in catalog order. With
// ?grouped=true the descriptors are grouped by category.
func (h *CatalogHandler) ListSources(c *gin.Context) {
	h.list(c, h.sources)
}

// ListStorages returns every storage descriptor in catalog order.
func (h *CatalogHandler) ListStorages(c *gin.Context) {
	h.list(c, h.storages)
}

// ListWidgets returns every widget descriptor in catalog order.
func (h *CatalogHandler) ListWidgets(c *gin.Context) {
	h.list(c, h.widgets)
}

// DescribeSource returns one data-source descriptor by type tag.
func (h *CatalogHandler) DescribeSource(c *gin.Context) {
	h.describe(c, h.sources)
}

// DescribeStorage returns one storage descriptor by type tag.
func (h *CatalogHandler) DescribeStorage(c *gin.Context) {
	h.describe(c, h.storages)
}

// DescribeWidget returns one widget descriptor by type tag.
func (h *CatalogHandler) DescribeWidget(c *gin.Context) {
	h.describe(c, h.widgets)
}

// SourceForm returns the blank rendered form model for a data-source type.
func (h *CatalogHandler) SourceForm(c *gin.Context) {
	h.form(c, h.sources)
}

// StorageForm returns the blank rendered form model for a storage type.
func (h *CatalogHandler) StorageForm(c *gin.Context) {
	h.form(c, h.storages)
}

// WidgetForm returns the blank rendered form model for a widget type.
func (h *CatalogHandler) WidgetForm(c *gin.Context) {
	h.form(c, h.widgets)
}

func (h *CatalogHandler) list(c *gin.Context, catalog *registry.Registry) {
	if c.Query("grouped") == "true" {
		response.Success(c, http.StatusOK, catalog.ByCategory())
		return
	}
	response.Success(c, http.StatusOK, catalog.All())
}

func (h *CatalogHandler) describe(c *gin.Context, catalog *registry.Registry) {
	desc, ok := catalog.Describe(c.Param("tag"))
	if !ok {
		response.Error(c, errors.ErrUnknownType)
		return
	}
	response.Success(c, http.StatusOK, desc)
}

func (h *CatalogHandler) form(c *gin.Context, catalog *registry.Registry) {
	tag := c.Param("tag")
	session := forms.NewSession(catalog)
	if err := session.SelectType(tag); err != nil {
		response.Error(c, errors.ErrUnknownType)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"type":   tag,
		"fields": session.Render(),
	})
}

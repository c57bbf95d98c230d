package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill-console/internal/services"
	"github.com/quillhq/quill-console/pkg/response"
)

// WidgetHandler exposes the dashboard widget APIs.
type WidgetHandler struct {
	svc *services.WidgetService
}

// NewWidgetHandler constructs a handler using the provided service.
func NewWidgetHandler(svc *services.WidgetService) *WidgetHandler {
	return &WidgetHandler{svc: svc}
}

// List returns widgets in dashboard order.
func (h *WidgetHandler) List(c *gin.Context) {
	records, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// Create adds a widget to the dashboard after schema validation.
func (h *WidgetHandler) Create(c *gin.Context) {
	var payload services.CreateWidgetInput
	if !bindAndValidate(c, &payload) {
		return
	}

	record, err := h.svc.Create(requestContext(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, record)
}

// Get returns one widget by id.
func (h *WidgetHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// Update applies a partial widget update.
func (h *WidgetHandler) Update(c *gin.Context) {
	var payload services.UpdateWidgetInput
	if !bindAndValidate(c, &payload) {
		return
	}

	record, err := h.svc.Update(requestContext(c), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// Delete removes a widget from the dashboard.
func (h *WidgetHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

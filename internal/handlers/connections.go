package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill-console/internal/services"
	"github.com/quillhq/quill-console/pkg/response"
)

// ConnectionHandler exposes the connection management APIs.
type ConnectionHandler struct {
	svc *services.ConnectionService
}

// NewConnectionHandler constructs a handler using the provided service.
func NewConnectionHandler(svc *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{svc: svc}
}

// List returns configured connections with optional filters and pagination.
func (h *ConnectionHandler) List(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	perPage := parseIntQuery(c, "per_page", 20)

	records, total, err := h.svc.List(requestContext(c), services.ListConnectionsOptions{
		Status:     c.Query("status"),
		SourceType: c.Query("source_type"),
		Search:     c.Query("search"),
		Page:       page,
		PageSize:   perPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      int(total),
		TotalPages: computeTotalPages(total, int64(perPage)),
	}
	response.SuccessWithMeta(c, http.StatusOK, records, meta)
}

// Create registers a new connection after schema validation.
func (h *ConnectionHandler) Create(c *gin.Context) {
	var payload services.CreateConnectionInput
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

// Get returns one connection by id.
func (h *ConnectionHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// Update applies a partial update to a connection.
func (h *ConnectionHandler) Update(c *gin.Context) {
	var payload services.UpdateConnectionInput
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

// Delete removes a connection.
func (h *ConnectionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Test probes the connection endpoint and returns the outcome.
func (h *ConnectionHandler) Test(c *gin.Context) {
	outcome, err := h.svc.Test(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, outcome)
}

// Start marks a connection active.
func (h *ConnectionHandler) Start(c *gin.Context) {
	record, err := h.svc.Start(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// Stop marks a connection stopped.
func (h *ConnectionHandler) Stop(c *gin.Context) {
	record, err := h.svc.Stop(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

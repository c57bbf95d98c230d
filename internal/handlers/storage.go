package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill-console/internal/services"
	"github.com/quillhq/quill-console/pkg/response"
)

// StorageHandler exposes the storage configuration APIs.
type StorageHandler struct {
	svc *services.StorageService
}

// NewStorageHandler constructs a handler using the provided service.
func NewStorageHandler(svc *services.StorageService) *StorageHandler {
	return &StorageHandler{svc: svc}
}

// List returns all storage configurations, default first.
func (h *StorageHandler) List(c *gin.Context) {
	records, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// Create registers a new storage configuration after schema validation.
func (h *StorageHandler) Create(c *gin.Context) {
	var payload services.CreateStorageInput
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

// Get returns one storage configuration by id.
func (h *StorageHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// Update applies a partial update to a storage configuration.
func (h *StorageHandler) Update(c *gin.Context) {
	var payload services.UpdateStorageInput
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

// Delete removes a storage configuration. The default cannot be deleted.
func (h *StorageHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Test probes the storage back-end and returns the outcome.
func (h *StorageHandler) Test(c *gin.Context) {
	outcome, err := h.svc.Test(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, outcome)
}

// SetDefault promotes a storage configuration to the single default.
func (h *StorageHandler) SetDefault(c *gin.Context) {
	record, err := h.svc.SetDefault(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// ToggleActive flips a storage configuration's active flag.
func (h *StorageHandler) ToggleActive(c *gin.Context) {
	record, err := h.svc.ToggleActive(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

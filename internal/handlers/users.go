package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill-console/internal/services"
	"github.com/quillhq/quill-console/pkg/response"
)

// UserHandler exposes the console account APIs.
type UserHandler struct {
	svc *services.UserService
}

// NewUserHandler constructs a handler using the provided service.
func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List returns all accounts.
func (h *UserHandler) List(c *gin.Context) {
	records, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// Create registers a new account.
func (h *UserHandler) Create(c *gin.Context) {
	var payload services.CreateUserInput
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

// Get returns one account by id.
func (h *UserHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// Update applies a partial account update.
func (h *UserHandler) Update(c *gin.Context) {
	var payload services.UpdateUserInput
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

// Delete removes an account.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
)

// requestContext extracts the inbound request's context so service calls get
// cancelled when the client disconnects. Handlers invoked without a real
// request (direct calls in tests) fall back to the background context.
func requestContext(c *gin.Context) context.Context {
	if c != nil && c.Request != nil {
		return c.Request.Context()
	}
	return context.Background()
}

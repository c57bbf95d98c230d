package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill-console/internal/services"
	"github.com/quillhq/quill-console/pkg/response"
)

// ReadingHandler exposes the ingested data API and the dashboard summary.
type ReadingHandler struct {
	svc *services.ReadingService
}

// NewReadingHandler constructs a handler using the provided service.
func NewReadingHandler(svc *services.ReadingService) *ReadingHandler {
	return &ReadingHandler{svc: svc}
}

// List returns recorded readings, newest first. Supported filters:
// connection_id, metric, since (RFC 3339 or relative seconds), limit.
func (h *ReadingHandler) List(c *gin.Context) {
	opts := services.ListReadingsOptions{
		ConnectionID: c.Query("connection_id"),
		Metric:       c.Query("metric"),
		Limit:        parseIntQuery(c, "limit", 100),
	}

	if since := strings.TrimSpace(c.Query("since")); since != "" {
		if ts, err := time.Parse(time.RFC3339, since); err == nil {
			opts.Since = ts
		} else if seconds, err := strconv.Atoi(since); err == nil && seconds > 0 {
			opts.Since = time.Now().Add(-time.Duration(seconds) * time.Second)
		}
	}

	records, err := h.svc.List(requestContext(c), opts)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// Summary returns the aggregated dashboard counters.
func (h *ReadingHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

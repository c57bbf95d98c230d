package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/quillhq/quill-console/internal/services"
	"github.com/quillhq/quill-console/pkg/logger"
	"github.com/quillhq/quill-console/pkg/response"
)

// TerminalHandler streams a connection's readings over a WebSocket so the
// console's live-data view can tail incoming values without polling.
type TerminalHandler struct {
	connections *services.ConnectionService
	readings    *services.ReadingService
	upgrader    websocket.Upgrader
	interval    time.Duration
	log         *zap.Logger
}

// NewTerminalHandler constructs a terminal handler polling the reading store
// at the given interval.
func NewTerminalHandler(connections *services.ConnectionService, readings *services.ReadingService, interval time.Duration) *TerminalHandler {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &TerminalHandler{
		connections: connections,
		readings:    readings,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The API has no cross-origin auth; CORS policy is handled upstream.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		interval: interval,
		log:      logger.WithModule("terminal"),
	}
}

// Stream upgrades the request and pushes new readings for the connection as
// they arrive. The stream closes when the client disconnects or the
// connection is deleted.
func (h *TerminalHandler) Stream(c *gin.Context) {
	id := c.Param("id")

	conn, err := h.connections.Get(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	socket, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer socket.Close()

	h.log.Info("terminal stream opened",
		zap.String("connection_id", conn.ID),
		zap.String("source_type", conn.SourceType))

	// Reads are discarded; the read loop only notices client disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := socket.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	cursor := time.Now()
	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
			batch, err := h.readings.List(requestContext(c), services.ListReadingsOptions{
				ConnectionID: id,
				Since:        cursor,
			})
			if err != nil {
				h.log.Warn("terminal stream query failed", zap.Error(err))
				return
			}
			// Stop streaming once the connection disappears.
			if _, err := h.connections.Get(requestContext(c), id); err != nil {
				_ = socket.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection removed"),
					time.Now().Add(time.Second))
				return
			}
			if len(batch) == 0 {
				continue
			}
			cursor = time.Now()
			// List returns newest first; replay oldest first.
			for i := len(batch) - 1; i >= 0; i-- {
				if err := socket.WriteJSON(batch[i]); err != nil {
					return
				}
			}
		}
	}
}

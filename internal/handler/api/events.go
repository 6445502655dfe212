package api

import (
	"log/slog"
	"net/http"
	"time"

	"find-my-space/internal/handler/middleware"
	"find-my-space/internal/infra/events"
	"find-my-space/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxReadMsg = 512
)

// EventSource is satisfied by *events.Broker.
type EventSource interface {
	Subscribe(filter func(shared.Event) bool) *events.Subscription
}

type EventsHandler struct {
	source   EventSource
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewEventsHandler(source EventSource, checkOrigin func(origin string) bool, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		source: source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return checkOrigin(r.Header.Get("Origin"))
			},
		},
		logger: logger,
	}
}

// @Summary Live updates
// @Description Websocket stream of booking events concerning the caller and all spot events. The token may be passed as ?token=.
// @Tags events
// @Security BearerAuth
// @Success 101 "Switching Protocols"
// @Failure 401 {object} httperr.Response
// @Router /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the handshake error
		h.logger.Warn("websocket upgrade failed", "error", err.Error())
		return
	}

	userID := identity.ID()
	sub := h.source.Subscribe(func(e shared.Event) bool {
		return e.Concerns(userID)
	})
	h.logger.Info("websocket subscribed", "user_id", userID)

	done := make(chan struct{})
	go h.readPump(conn, done)
	h.writePump(conn, sub, done)

	sub.Close()
	_ = conn.Close()
	h.logger.Info("websocket closed", "user_id", userID)
}

// readPump discards client frames; it exists to process control frames and detect disconnects.
func (h *EventsHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(maxReadMsg)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", "error", err.Error())
			}
			return
		}
	}
}

func (h *EventsHandler) writePump(conn *websocket.Conn, sub *events.Subscription, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case e, ok := <-sub.C():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}
			if err := conn.WriteJSON(e); err != nil {
				h.logger.Warn("websocket write failed", "error", err.Error())
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

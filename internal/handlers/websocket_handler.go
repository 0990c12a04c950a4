package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/latestcomment/mind-mirror/internal/models"
	"github.com/latestcomment/mind-mirror/internal/services"
)

const closeWriteWait = time.Second

type WebSocketHandler struct {
	Service *services.FreeWriteService
}

func NewWebSocketHandler(service *services.FreeWriteService) *WebSocketHandler {
	return &WebSocketHandler{Service: service}
}

func (h *WebSocketHandler) WebSocketMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket runs one timed free-write window. Every text frame is the
// whole draft so far; the reply carries its live mood.
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	defer func() {
		_ = c.Close()
	}()

	fw := h.Service.Start()
	defer h.Service.Finish(fw)

	if err := c.WriteJSON(h.Service.Status(fw)); err != nil {
		return
	}
	_ = c.SetReadDeadline(fw.Deadline)

	if h.loopDrafts(c, fw) {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "time's up")
		_ = c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteWait))
	}
}

// loopDrafts scores drafts until the window expires or the client goes away.
// It reports whether the window expired.
func (h *WebSocketHandler) loopDrafts(c *websocket.Conn, fw *models.FreeWriteSession) bool {
	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			// Read deadline is the free-write deadline.
			update, closed := h.Service.Expire(fw)
			if closed {
				_ = c.WriteJSON(update)
			}
			return closed
		}

		update, err := h.Service.Update(fw, string(data))
		if werr := c.WriteJSON(update); werr != nil {
			return false
		}
		if err != nil || update.Closed {
			return true
		}
	}
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/latestcomment/mind-mirror/static"
)

// NewApp builds the Fiber app with the embedded views and every route wired.
func NewApp(h *Handler, ws *WebSocketHandler) *fiber.App {
	engine := html.NewFileSystem(http.FS(static.Views), ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(logger.New())

	app.Get("/", h.FormPage)
	app.Post("/analyze", h.AnalyzeForm)

	api := app.Group("/api")
	api.Get("/questions", h.Questions)
	api.Post("/analyze", h.AnalyzeAPI)

	app.Get("/ws/freewrite", ws.WebSocketMiddleware, websocket.New(ws.HandleWebSocket))
	return app
}

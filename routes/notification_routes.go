package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/seifeddine26/peer_learn/handlers"
)

func NotificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Use("/ws/notifications", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/notifications", websocket.New(handlers.ServeWs))
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seifeddine26/peer_learn/handlers"
	"github.com/seifeddine26/peer_learn/middleware"
)

func DashboardRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/sessions", middleware.Protected(), handlers.GetMySessions)
	api.Get("/dashboard", middleware.Protected(), handlers.GetDashboard)
}

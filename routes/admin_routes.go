package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seifeddine26/peer_learn/handlers"
	"github.com/seifeddine26/peer_learn/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/users", handlers.GetAllUsers)
	admin.Get("/catalog-stats", handlers.GetCatalogStats)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seifeddine26/peer_learn/handlers"
	"github.com/seifeddine26/peer_learn/middleware"
)

func StudyGroupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	groups := api.Group("/study-groups")
	groups.Get("", handlers.ListStudyGroups)
	groups.Post("/:groupId/join", middleware.Protected(), handlers.JoinStudyGroup)
}

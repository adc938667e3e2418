package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seifeddine26/peer_learn/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/subjects", handlers.GetSubjects)
	api.Get("/tutors", handlers.ListTutors)
	api.Get("/tutors/:tutorId", handlers.GetTutorProfile)
	api.Get("/leaderboard", handlers.GetLeaderboard)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seifeddine26/peer_learn/database"
	"github.com/seifeddine26/peer_learn/models"
	"github.com/seifeddine26/peer_learn/services"
)

// GetLeaderboard returns every tutor ranked by total score, with the
// podium split out for the top-three display.
func GetLeaderboard(c *fiber.Ctx) error {
	var tutors []models.Tutor
	if err := database.DB.Preload("Subjects").Order("id asc").Find(&tutors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load tutors"})
	}

	ranked := services.RankTutors(tutors)

	podium := make([]services.RankedTutor, 0, 3)
	for _, r := range ranked {
		if r.OnPodium {
			podium = append(podium, r)
		}
	}

	return c.JSON(fiber.Map{
		"podium":      podium,
		"leaderboard": ranked,
	})
}

package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/seifeddine26/peer_learn/bookingflow"
	"github.com/seifeddine26/peer_learn/database"
	"github.com/seifeddine26/peer_learn/models"
)

// GetMySessions returns the caller's booked sessions in booking order.
func GetMySessions(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	repo := database.NewSessionRepository(userID)
	sessions, err := repo.ReadAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load sessions"})
	}
	return c.JSON(fiber.Map{"sessions": sessions})
}

// GetDashboard aggregates what the landing page shows: the stored
// profile, the session list and a few counters.
func GetDashboard(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	repo := database.NewSessionRepository(userID)
	sessions, err := repo.ReadAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load sessions"})
	}

	learning := 0
	teaching := 0
	for _, s := range sessions {
		if s.IsTeaching {
			teaching++
		} else {
			learning++
		}
	}

	profile := fiber.Map{}
	if Profile != nil {
		name, _ := Profile.Get(bookingflow.KeyUserName)
		email, _ := Profile.Get(bookingflow.KeyUserEmail)
		profile["name"] = name
		profile["email"] = email
		if raw, err := Profile.Get(bookingflow.KeyUserRoles); err == nil && raw != "" {
			var roles []string
			if json.Unmarshal([]byte(raw), &roles) == nil {
				profile["roles"] = roles
			}
		}
		if raw, err := Profile.Get(bookingflow.KeyUserSubjects); err == nil && raw != "" {
			var subjects []string
			if json.Unmarshal([]byte(raw), &subjects) == nil {
				profile["subjects"] = subjects
			}
		}
	}

	var waiting []models.WaitingLearner
	if err := database.DB.Find(&waiting).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load waiting learners"})
	}

	return c.JSON(fiber.Map{
		"profile":          profile,
		"sessions":         sessions,
		"learning_count":   learning,
		"teaching_count":   teaching,
		"waiting_learners": waiting,
	})
}

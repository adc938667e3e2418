package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/seifeddine26/peer_learn/database"
	"github.com/seifeddine26/peer_learn/models"
	"github.com/seifeddine26/peer_learn/services"
)

// ListTutors serves the find-teacher page: the full catalog narrowed by
// the query-string filter. Filtering happens in memory so the result
// order always matches the seeded catalog order.
func ListTutors(c *fiber.Ctx) error {
	var tutors []models.Tutor
	if err := database.DB.Preload("Subjects").Preload("Availability").
		Order("id asc").Find(&tutors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load tutors"})
	}

	var subjects []models.Subject
	if err := database.DB.Find(&subjects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load subjects"})
	}

	filter := services.TutorFilter{
		Query:     c.Query("query"),
		SubjectID: c.Query("subject_id"),
		Price:     c.Query("price", services.PriceFilterAll),
	}
	if raw := c.Query("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "min_rating must be a number"})
		}
		filter.MinRating = minRating
	}
	if filter.Price != services.PriceFilterAll &&
		filter.Price != services.PriceFilterFree &&
		filter.Price != services.PriceFilterPaid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price must be all, free or paid"})
	}

	matched := services.FilterTutors(tutors, subjects, filter)
	return c.JSON(fiber.Map{"tutors": matched, "total": len(matched)})
}

func GetTutorProfile(c *fiber.Ctx) error {
	var tutor models.Tutor
	if err := database.DB.Preload("Subjects").Preload("Availability").
		First(&tutor, "id = ?", c.Params("tutorId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
	}
	return c.JSON(tutor)
}

func GetSubjects(c *fiber.Ctx) error {
	var subjects []models.Subject
	if err := database.DB.Find(&subjects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load subjects"})
	}
	return c.JSON(fiber.Map{"subjects": subjects})
}

package handlers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/seifeddine26/peer_learn/database"
	"github.com/seifeddine26/peer_learn/models"
)

func GetAllUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := strings.TrimSpace(c.Query("search"))
	offset := (page - 1) * limit

	var users []models.User
	var totalUsers int64

	query := database.DB.Model(&models.User{})
	countQuery := database.DB.Model(&models.User{})

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
		countQuery = countQuery.Where("full_name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
	}

	countQuery.Count(&totalUsers)
	query.Offset(offset).Limit(limit).Find(&users)

	return c.JSON(fiber.Map{
		"data": users,
		"meta": fiber.Map{
			"total_users":  totalUsers,
			"total_pages":  int(math.Ceil(float64(totalUsers) / float64(limit))),
			"current_page": page,
		},
	})
}

// GetCatalogStats surfaces the seed catalog counters for the admin
// dashboard.
func GetCatalogStats(c *fiber.Ctx) error {
	var tutors, subjects, waiting, groups, sessions int64
	database.DB.Model(&models.Tutor{}).Count(&tutors)
	database.DB.Model(&models.Subject{}).Count(&subjects)
	database.DB.Model(&models.WaitingLearner{}).Count(&waiting)
	database.DB.Model(&models.StudyGroup{}).Count(&groups)
	database.DB.Model(&models.BookedSession{}).Count(&sessions)

	return c.JSON(fiber.Map{
		"tutors":           tutors,
		"subjects":         subjects,
		"waiting_learners": waiting,
		"study_groups":     groups,
		"booked_sessions":  sessions,
	})
}

package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/seifeddine26/peer_learn/database"
	"github.com/seifeddine26/peer_learn/models"
	"github.com/seifeddine26/peer_learn/utils"
	"github.com/seifeddine26/peer_learn/websocket"
	"gorm.io/gorm"
)

// ListStudyGroups serves the study groups page with the same optional
// query and subject narrowing the tutor search uses.
func ListStudyGroups(c *fiber.Ctx) error {
	var groups []models.StudyGroup
	if err := database.DB.Preload("Members").Order("id asc").Find(&groups).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load study groups"})
	}

	query := strings.ToLower(c.Query("query"))
	subject := c.Query("subject_id")

	matched := make([]models.StudyGroup, 0, len(groups))
	for _, g := range groups {
		if subject != "" && subject != "all" && g.SubjectID != subject {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(g.Title), query) &&
			!strings.Contains(strings.ToLower(g.Description), query) {
			continue
		}
		matched = append(matched, g)
	}

	return c.JSON(fiber.Map{"groups": matched, "total": len(matched)})
}

func JoinStudyGroup(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	groupID := c.Params("groupId")
	var group models.StudyGroup

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Members").First(&group, "id = ?", groupID).Error; err != nil {
			return err
		}
		if group.IsFull() {
			return errGroupFull
		}
		if group.HasMember(user.FullName) {
			return errAlreadyMember
		}
		member := models.StudyGroupMember{
			GroupID: group.ID,
			Name:    user.FullName,
			Avatar:  initials(user.FullName),
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		if group.InviteCode == nil {
			code, err := utils.GenerateUniqueInviteCode(tx)
			if err != nil {
				return err
			}
			if err := tx.Model(&group).Update("invite_code", code).Error; err != nil {
				return err
			}
			group.InviteCode = &code
		}
		group.Members = append(group.Members, member)
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, errGroupFull):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This study group is full"})
	case errors.Is(err, errAlreadyMember):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already joined this group"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Study group not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to join study group"})
	}

	websocket.Push(&websocket.Notification{
		UserID:      userID,
		Kind:        "group_joined",
		Message:     "You joined " + group.Title + "!",
		Description: group.Date + " at " + group.Time,
	})

	return c.JSON(group)
}

var errGroupFull = errors.New("group full")
var errAlreadyMember = errors.New("already a member")

// initials builds the two-letter avatar shown in the members row.
func initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "?"
	}
	out := strings.ToUpper(parts[0][:1])
	if len(parts) > 1 {
		out += strings.ToUpper(parts[len(parts)-1][:1])
	}
	return out
}

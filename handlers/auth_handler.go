package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/seifeddine26/peer_learn/configs"
	"github.com/seifeddine26/peer_learn/bookingflow"
	"github.com/seifeddine26/peer_learn/database"
	"github.com/seifeddine26/peer_learn/models"
	"github.com/seifeddine26/peer_learn/notifications"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

// Profile is the local profile store populated by the sign-up flow and
// cleared on logout; wired from main.
var Profile bookingflow.ProfileStore

type RegisterRequest struct {
	FullName string   `json:"full_name" validate:"required,min=3"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,oneof=teacher learner"`
	Subjects []string `json:"subjects" validate:"omitempty,dive,required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func RegisterUser(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	newUser := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashedPassword),
		Roles:    req.Roles,
		Subjects: req.Subjects,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	saveProfile(newUser)

	go notifications.SendEmail(newUser.FullName, newUser.Email, "Welcome!", "<h1>Welcome!</h1><p>Thank you for joining Peer Learn.</p>")

	response := UserResponse{
		ID:        newUser.ID.String(),
		FullName:  newUser.FullName,
		Email:     newUser.Email,
		Roles:     newUser.Roles,
		CreatedAt: newUser.CreatedAt,
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

func LoginUser(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	result := database.DB.Where("email = ?", req.Email).First(&user)
	if result.Error != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	role := "learner"
	if len(user.Roles) > 0 {
		role = user.Roles[0]
	}
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	saveProfile(user)

	return c.JSON(fiber.Map{"token": t})
}

// LogoutUser clears the stored profile keys. Token expiry handles the
// rest; there is no server-side session to invalidate.
func LogoutUser(c *fiber.Ctx) error {
	if Profile != nil {
		if err := Profile.Clear(); err != nil {
			log.Printf("🔥 Failed to clear profile store: %v", err)
		}
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// saveProfile mirrors the signed-in user into the profile keys the
// dashboard and navigation read back.
func saveProfile(user models.User) {
	if Profile == nil {
		return
	}
	roles, _ := json.Marshal(user.Roles)
	subjects, _ := json.Marshal(user.Subjects)
	for key, value := range map[string]string{
		bookingflow.KeyUserName:     user.FullName,
		bookingflow.KeyUserEmail:    user.Email,
		bookingflow.KeyUserRoles:    string(roles),
		bookingflow.KeyUserSubjects: string(subjects),
	} {
		if err := Profile.Set(key, value); err != nil {
			log.Printf("🔥 Failed to store profile key %s: %v", key, err)
		}
	}
}

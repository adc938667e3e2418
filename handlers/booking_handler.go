package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/seifeddine26/peer_learn/bookingflow"
	"github.com/seifeddine26/peer_learn/database"
	"github.com/seifeddine26/peer_learn/models"
	"github.com/seifeddine26/peer_learn/notifications"
	"github.com/seifeddine26/peer_learn/services"
	"github.com/seifeddine26/peer_learn/websocket"
)

// Flows holds the live wizard of each signed-in user.
var Flows = bookingflow.NewManager()

var timeNow = time.Now

type StartFlowRequest struct {
	TutorID string `json:"tutor_id" validate:"required"`
}

type SessionTypeRequest struct {
	SessionType string `json:"session_type" validate:"required,oneof=individual group"`
}

type LocationRequest struct {
	LocationType string `json:"location_type" validate:"required,oneof=online in-person"`
}

type SubjectRequest struct {
	SubjectID string `json:"subject_id" validate:"required"`
}

type PartnerRequest struct {
	LearnerID string `json:"learner_id" validate:"required"`
}

type DateTimeRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time string `json:"time" validate:"omitempty"`
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return uuid.Parse(claims["user_id"].(string))
}

// flowError maps wizard failures onto HTTP statuses: step violations
// are the client's fault, a missing flow means the wizard was never
// started, anything else is a server problem.
func flowError(c *fiber.Ctx, err error) error {
	var stepErr *bookingflow.StepError
	switch {
	case errors.As(err, &stepErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": stepErr.Reason, "step": stepErr.Step})
	case errors.Is(err, bookingflow.ErrNoActiveFlow):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No booking in progress"})
	case errors.Is(err, bookingflow.ErrSlotTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already booked this tutor at that time"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
}

func StartBookingFlow(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req StartFlowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var tutor models.Tutor
	if err := database.DB.Preload("Subjects").Preload("Availability").First(&tutor, "id = ?", req.TutorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
	}

	var subjects []models.Subject
	if err := database.DB.Find(&subjects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load subjects"})
	}

	var waiting []models.WaitingLearner
	if err := database.DB.Find(&waiting).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load waiting learners"})
	}

	flow := bookingflow.NewFlow(tutor, subjects, waiting)
	Flows.Start(userID.String(), flow)

	return c.Status(fiber.StatusCreated).JSON(flow.State())
}

func GetBookingFlow(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	flow, err := Flows.Get(userID.String())
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(flow.State())
}

func SelectSessionType(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	var req SessionTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	flow, err := Flows.Get(userID.String())
	if err != nil {
		return flowError(c, err)
	}
	if err := flow.SelectSessionType(models.SessionType(req.SessionType)); err != nil {
		return flowError(c, err)
	}
	return c.JSON(flow.State())
}

func SelectLocation(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	var req LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	flow, err := Flows.Get(userID.String())
	if err != nil {
		return flowError(c, err)
	}
	if err := flow.SelectLocation(models.LocationType(req.LocationType)); err != nil {
		return flowError(c, err)
	}
	return c.JSON(flow.State())
}

func SelectSubject(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	flow, err := Flows.Get(userID.String())
	if err != nil {
		return flowError(c, err)
	}
	if err := flow.SelectSubject(req.SubjectID); err != nil {
		return flowError(c, err)
	}
	return c.JSON(flow.State())
}

func TogglePartner(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	var req PartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	flow, err := Flows.Get(userID.String())
	if err != nil {
		return flowError(c, err)
	}
	if err := flow.TogglePartner(req.LearnerID); err != nil {
		return flowError(c, err)
	}
	return c.JSON(flow.State())
}

// SwitchToIndividual handles the empty-pool escape hatch on the
// partners step.
func SwitchToIndividual(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	flow, err := Flows.Get(userID.String())
	if err != nil {
		return flowError(c, err)
	}
	if err := flow.SwitchToIndividual(); err != nil {
		return flowError(c, err)
	}
	return c.JSON(flow.State())
}

func SelectDateTime(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	var req DateTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	flow, err := Flows.Get(userID.String())
	if err != nil {
		return flowError(c, err)
	}
	if req.Date != "" {
		if err := flow.SelectDate(req.Date); err != nil {
			return flowError(c, err)
		}
	}
	if req.Time != "" {
		if err := flow.SelectTime(req.Time); err != nil {
			return flowError(c, err)
		}
	}
	return c.JSON(flow.State())
}

func ContinueBookingFlow(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	flow, err := Flows.Get(userID.String())
	if err != nil {
		return flowError(c, err)
	}
	if err := flow.Continue(); err != nil {
		return flowError(c, err)
	}
	return c.JSON(flow.State())
}

func BackBookingFlow(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	flow, err := Flows.Get(userID.String())
	if err != nil {
		return flowError(c, err)
	}
	if err := flow.Back(); err != nil {
		return flowError(c, err)
	}
	return c.JSON(flow.State())
}

func ConfirmBooking(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	flow, err := Flows.Get(userID.String())
	if err != nil {
		return flowError(c, err)
	}

	repo := database.NewSessionRepository(userID)
	session, note, err := flow.Confirm(repo)
	if err != nil {
		log.Printf("🔥 Booking failed for user %s: %v", userID, err)
		return flowError(c, err)
	}
	Flows.Finish(userID.String())

	log.Printf("✅ Session %s booked with %s by user %s", session.ID, session.TeacherName, userID)

	go services.GenerateBookingRecap(session)

	websocket.Push(&websocket.Notification{
		UserID:      userID,
		Kind:        "booking_confirmed",
		Message:     note.Message,
		Description: note.Description,
	})

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err == nil {
		body := "<h1>Session booked!</h1><p>" + note.Message + "<br>" + note.Description + "</p>"
		go notifications.SendEmail(user.FullName, user.Email, "Your session is booked", body)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session":      session,
		"notification": note,
	})
}

// CancelBookingFlow drops the draft. Nothing was persisted, so there is
// nothing to roll back.
func CancelBookingFlow(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	Flows.Cancel(userID.String())
	return c.JSON(fiber.Map{"message": "Booking cancelled"})
}

func GetPartnerCandidates(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	flow, err := Flows.Get(userID.String())
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(fiber.Map{"partners": flow.PartnerCandidates()})
}

func GetAvailableDates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"dates": bookingflow.AvailableDates(timeNow()),
		"times": bookingflow.AvailableTimes,
	})
}

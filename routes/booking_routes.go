package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seifeddine26/peer_learn/handlers"
	"github.com/seifeddine26/peer_learn/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Post("/flow", handlers.StartBookingFlow)
	booking.Get("/flow", handlers.GetBookingFlow)
	booking.Put("/flow/session-type", handlers.SelectSessionType)
	booking.Put("/flow/location", handlers.SelectLocation)
	booking.Put("/flow/subject", handlers.SelectSubject)
	booking.Put("/flow/partners", handlers.TogglePartner)
	booking.Put("/flow/individual", handlers.SwitchToIndividual)
	booking.Put("/flow/datetime", handlers.SelectDateTime)
	booking.Post("/flow/continue", handlers.ContinueBookingFlow)
	booking.Post("/flow/back", handlers.BackBookingFlow)
	booking.Post("/flow/confirm", handlers.ConfirmBooking)
	booking.Delete("/flow", handlers.CancelBookingFlow)
	booking.Get("/flow/partners", handlers.GetPartnerCandidates)
	booking.Get("/flow/dates", handlers.GetAvailableDates)
}

package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	config "github.com/seifeddine26/peer_learn/configs"
	"github.com/seifeddine26/peer_learn/database"
	"github.com/seifeddine26/peer_learn/handlers"
	"github.com/seifeddine26/peer_learn/jobs"
	"github.com/seifeddine26/peer_learn/localstore"
	"github.com/seifeddine26/peer_learn/notifications"
	"github.com/seifeddine26/peer_learn/routes"
	"github.com/seifeddine26/peer_learn/websocket"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	database.SeedCatalog()
	notifications.InitEmailService()

	storePath := config.Config("LOCAL_STORE_PATH")
	if storePath == "" {
		storePath = "peer_learn_store.json"
	}
	handlers.Profile = localstore.New(storePath)

	c := cron.New()
	c.AddFunc("*/5 * * * *", jobs.SendSessionReminders)
	go c.Start()
	log.Println("✅ Cron job for session reminders scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Peer Learn",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		PassLocalsToViews: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Tunis",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Peer Learn API",
		})
	})

	routes.PublicRoutes(app)
	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.BookingRoutes(app)
	routes.DashboardRoutes(app)
	routes.StudyGroupRoutes(app)
	routes.UploadRoutes(app)
	routes.AdminRoutes(app)
	routes.NotificationRoutes(app)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	err := app.Listen(":8080")
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}

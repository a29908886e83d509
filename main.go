package main

import (
	"log"

	"steakz/config"
	"steakz/database"
	"steakz/middleware"
	authRoutes "steakz/routers/authRoutes"
	contactRoutes "steakz/routers/contactRoutes"
	reportRoutes "steakz/routers/reportRoutes"
	reservationRoutes "steakz/routers/reservationRoutes"
	reviewRoutes "steakz/routers/reviewRoutes"
	userRoutes "steakz/routers/userRoutes"
	"steakz/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if err := utils.SeedAdminUser(database.Database.Db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Steakz restaurant API!")
	})

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	reservationRoutes.SetupReservationRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	reportRoutes.SetupReportRoutes(app)
	contactRoutes.SetupContactRoutes(app)

	// 404 fallback for unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not Found", nil)
	})

	reportCron := utils.InitializeReportScheduler()
	defer reportCron.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

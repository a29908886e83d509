package reportRoutes

import (
	reportController "steakz/controllers/report"
	"steakz/middleware"
	"steakz/models"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	group := app.Group("/api/reports", middleware.JWTMiddleware)

	group.Get("/summary",
		middleware.RequireRoles(models.RoleAdmin, models.RoleManager),
		reportController.Summary,
	)
}

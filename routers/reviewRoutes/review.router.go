package reviewRoutes

import (
	reviewController "steakz/controllers/review"
	"steakz/middleware"
	"steakz/models"
	reviewValidator "steakz/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	group := app.Group("/api/reviews")

	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	// Public surface.
	group.Get("/", reviewController.ListApproved)
	group.Post("/", reviewValidator.Create(), reviewController.Create)

	// Moderation.
	group.Get("/pending", middleware.JWTMiddleware, adminOnly, reviewController.ListPending)
	group.Patch("/:id/approve", middleware.JWTMiddleware, adminOnly, reviewController.Approve)
	group.Delete("/:id", middleware.JWTMiddleware, adminOnly, reviewController.Delete)
}

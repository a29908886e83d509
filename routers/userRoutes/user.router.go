package userRoutes

import (
	userController "steakz/controllers/user"
	"steakz/middleware"
	"steakz/models"
	userValidator "steakz/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users", middleware.JWTMiddleware)

	userGroup.Get("/", userController.List)
	userGroup.Get("/:id", userController.Get)

	adminGroup := app.Group("/api/admin/users",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleAdmin),
	)

	adminGroup.Post("/", userValidator.AdminCreate(), userController.AdminCreate)
	adminGroup.Patch("/:id", userValidator.AdminUpdate(), userController.AdminUpdate)
	adminGroup.Patch("/:id/role", userValidator.ChangeRole(), userController.AdminChangeRole)
	adminGroup.Delete("/:id", userController.AdminDelete)
}

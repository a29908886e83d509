package reservationRoutes

import (
	reservationController "steakz/controllers/reservation"
	"steakz/middleware"
	"steakz/models"
	reservationValidator "steakz/validators/reservation"

	"github.com/gofiber/fiber/v2"
)

func SetupReservationRoutes(app *fiber.App) {
	group := app.Group("/api/reservations", middleware.JWTMiddleware)

	managerOnly := middleware.RequireRoles(models.RoleAdmin, models.RoleManager)
	cashierOnly := middleware.RequireRoles(models.RoleAdmin, models.RoleCashier)
	frontOfHouse := middleware.RequireRoles(models.RoleAdmin, models.RoleManager, models.RoleCashier)

	// Staff-scoped operations.
	group.Get("/", managerOnly, reservationController.List)
	group.Post("/", managerOnly, reservationValidator.Book(), reservationController.Book)
	group.Get("/slots", managerOnly, reservationController.Slots)
	group.Get("/today", frontOfHouse, reservationController.Today)
	group.Get("/unpaid", cashierOnly, reservationController.Unpaid)
	group.Get("/report", managerOnly, reservationController.Report)

	// Self-scoped operations: any authenticated user, own reservations only.
	group.Get("/mine", reservationController.Mine)
	group.Post("/mine", reservationValidator.BookSelf(), reservationController.BookSelf)

	group.Patch("/:id/mark-paid", cashierOnly, reservationController.MarkPaid)
	group.Patch("/:id/serve", cashierOnly, reservationController.Serve)
}

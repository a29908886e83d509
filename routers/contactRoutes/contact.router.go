package contactRoutes

import (
	contactController "steakz/controllers/contact"
	contactValidator "steakz/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	app.Post("/api/contact", contactValidator.Message(), contactController.SendMessage)
}

package contactController

import (
	"log"

	"steakz/database"
	"steakz/middleware"
	"steakz/models"
	"steakz/utils"
	contactValidator "steakz/validators/contact"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SendMessage stores a contact-form message and forwards it to the
// restaurant inbox. The email send is fire-and-forget.
func SendMessage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*contactValidator.MessageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ContactMessage{
		Reference: uuid.NewString(),
		Name:      reqData.Name,
		Email:     reqData.Email,
		Message:   reqData.Message,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		log.Printf("Error saving contact message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save your message!", nil)
	}

	go utils.SendContactEmail(message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message received!", fiber.Map{
		"reference": message.Reference,
	})
}

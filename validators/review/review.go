package reviewValidator

import (
	"steakz/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateRequest is the validated review submission payload.
type CreateRequest struct {
	Content  string `json:"content" validate:"required"`
	UserName string `json:"userName" validate:"required"`
	Stars    int    `json:"stars" validate:"required,min=1,max=5"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Content":
					errors["content"] = "Review content is required!"
				case "UserName":
					errors["userName"] = "Name is required!"
				case "Stars":
					errors["stars"] = "Stars must be between 1 and 5!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

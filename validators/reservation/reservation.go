package reservationValidator

import (
	"steakz/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// OrderInput is one line item in a booking request.
type OrderInput struct {
	Item  string  `json:"item" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// BookRequest is the validated booking payload. UserID is required on the
// staff endpoint and ignored on the self-service endpoint.
type BookRequest struct {
	UserID uint         `json:"userId"`
	Name   string       `json:"name" validate:"required"`
	Date   string       `json:"date" validate:"required"`
	Time   string       `json:"time" validate:"required"`
	Orders []OrderInput `json:"orders" validate:"dive"`
}

func bookErrors(reqData *BookRequest, requireUser bool) map[string]string {
	errors := make(map[string]string)

	if requireUser && reqData.UserID == 0 {
		errors["userId"] = "User ID is required!"
	}

	if err := validate.Struct(reqData); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Name":
				errors["name"] = "Name is required!"
			case "Date":
				errors["date"] = "Date is required!"
			case "Time":
				errors["time"] = "Time is required!"
			case "Item":
				errors["orders"] = "Each order needs an item name!"
			case "Price":
				errors["orders"] = "Order prices must not be negative!"
			}
		}
	}

	return errors
}

// Book validates the staff booking payload (userId required).
func Book() fiber.Handler {
	return book(true)
}

// BookSelf validates the self-service booking payload (userId comes from the
// token, not the body).
func BookSelf() fiber.Handler {
	return book(false)
}

func book(requireUser bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BookRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := bookErrors(reqData, requireUser); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBooking", reqData)
		return c.Next()
	}
}
